package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/folio-api/internal/platform/logger"
)

// SupabaseBucket uploads through the provider's storage REST API.
type SupabaseBucket struct {
	baseURL string
	apiKey  string
	bucket  string
	client  *http.Client
	logger  *slog.Logger
}

// NewSupabaseBucket creates a bucket client for baseURL. A nil client uses
// http.DefaultClient.
func NewSupabaseBucket(baseURL, apiKey, bucket string, client *http.Client, logger *slog.Logger) *SupabaseBucket {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SupabaseBucket{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		bucket:  bucket,
		client:  client,
		logger:  logger.With(slog.String("component", "supabase_bucket")),
	}
}

var _ Bucket = (*SupabaseBucket)(nil)

// PublicURL returns the public address of key.
func (b *SupabaseBucket) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", b.baseURL, b.bucket, escapeKey(key))
}

// Put implements Bucket.
func (b *SupabaseBucket) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	log := logger.FromContextOrDefault(ctx, b.logger)

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", b.baseURL, b.bucket, escapeKey(key))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, r)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	if size >= 0 {
		req.ContentLength = size
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Authorization", "Bearer "+b.apiKey)
	req.Header.Set("apikey", b.apiKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("storage API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	log.Debug("object stored", slog.String("bucket", b.bucket), slog.String("key", key))
	return b.PublicURL(key), nil
}
