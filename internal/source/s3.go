package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Source fetches the catalog from an S3 (or S3-compatible) bucket.
// Region, static credentials, and a custom endpoint come from the
// MEALSCOPE_S3_REGION, MEALSCOPE_S3_ACCESS_KEY, MEALSCOPE_S3_SECRET_KEY,
// and MEALSCOPE_S3_ENDPOINT environment variables.
type S3Source struct {
	bucket string
	key    string
}

func newS3Source(uri string) (*S3Source, error) {
	rest := strings.TrimPrefix(uri, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid s3 uri %q (want s3://bucket/key)", uri)
	}
	return &S3Source{bucket: bucket, key: key}, nil
}

// Fetch downloads the catalog object.
func (s *S3Source) Fetch(ctx context.Context) ([]byte, error) {
	client, err := newS3Client(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get %s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

// Location returns the s3:// URI.
func (s *S3Source) Location() string { return "s3://" + s.bucket + "/" + s.key }

func newS3Client(ctx context.Context) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region := os.Getenv("MEALSCOPE_S3_REGION"); region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	accessKey := os.Getenv("MEALSCOPE_S3_ACCESS_KEY")
	secretKey := os.Getenv("MEALSCOPE_S3_SECRET_KEY")
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if endpoint := os.Getenv("MEALSCOPE_S3_ENDPOINT"); endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	return s3.NewFromConfig(awsCfg, s3Opts...), nil
}
