package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	gcs "cloud.google.com/go/storage"
)

// GCSSource fetches the catalog from a Google Cloud Storage bucket.
// It uses Application Default Credentials (works with Workload Identity,
// SA keys, gcloud auth).
type GCSSource struct {
	bucket string
	object string
}

func newGCSSource(uri string) (*GCSSource, error) {
	rest := strings.TrimPrefix(uri, "gs://")
	bucket, object, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return nil, fmt.Errorf("invalid gcs uri %q (want gs://bucket/object)", uri)
	}
	return &GCSSource{bucket: bucket, object: object}, nil
}

// Fetch downloads the catalog object.
func (s *GCSSource) Fetch(ctx context.Context) ([]byte, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	defer client.Close()

	r, err := client.Bucket(s.bucket).Object(s.object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs read %s/%s: %w", s.bucket, s.object, err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Location returns the gs:// URI.
func (s *GCSSource) Location() string { return "gs://" + s.bucket + "/" + s.object }
