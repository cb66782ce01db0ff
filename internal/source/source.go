// Package source resolves catalog locations to raw bytes. A dish catalog
// may live on the local filesystem, behind an HTTP endpoint, or in an S3
// or GCS bucket; decoding the bytes stays in pkg/menu.
package source

import (
	"context"
	"os"
	"strings"
)

// CatalogSource fetches the raw bytes of a dish catalog from one location.
type CatalogSource interface {
	Fetch(ctx context.Context) ([]byte, error)
	// Location describes where the catalog comes from, for logs and errors.
	Location() string
}

// FromURI picks a source implementation from the URI scheme. URIs without
// a scheme (and file:// URIs) resolve to the local filesystem.
func FromURI(uri string) (CatalogSource, error) {
	switch {
	case strings.HasPrefix(uri, "s3://"):
		return newS3Source(uri)
	case strings.HasPrefix(uri, "gs://"):
		return newGCSSource(uri)
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return newHTTPSource(uri), nil
	case strings.HasPrefix(uri, "file://"):
		return &FileSource{Path: strings.TrimPrefix(uri, "file://")}, nil
	default:
		return &FileSource{Path: uri}, nil
	}
}

// FileSource reads the catalog from the local filesystem.
type FileSource struct {
	Path string
}

// Fetch reads the catalog file.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	return os.ReadFile(s.Path)
}

// Location returns the file path.
func (s *FileSource) Location() string { return s.Path }
