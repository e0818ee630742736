package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/phrazzld/folio-api/internal/config"
)

// Bucket stores objects and returns their public URLs.
type Bucket interface {
	// Put stores size bytes from r under key and returns the object's public
	// URL. size may be -1 when unknown.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// New builds the bucket selected by cfg.Storage.Driver.
func New(cfg *config.Config, client *http.Client, logger *slog.Logger) (Bucket, error) {
	switch cfg.Storage.Driver {
	case "supabase":
		return NewSupabaseBucket(cfg.Supabase.URL, cfg.Supabase.Key, cfg.Storage.Bucket, client, logger), nil
	case "s3":
		return NewS3Bucket(cfg.Storage, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// escapeKey escapes each path segment of key for use in a URL.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
