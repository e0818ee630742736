package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/phrazzld/folio-api/internal/config"
	"github.com/phrazzld/folio-api/internal/platform/logger"
)

// S3Bucket uploads to an S3-compatible endpoint with minio-go. Objects are
// served from PublicBaseURL, typically a CDN or public bucket domain.
type S3Bucket struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	logger        *slog.Logger
}

// NewS3Bucket creates an S3 bucket client from cfg.
func NewS3Bucket(cfg config.StorageConfig, logger *slog.Logger) (*S3Bucket, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &S3Bucket{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger.With(slog.String("component", "s3_bucket")),
	}, nil
}

var _ Bucket = (*S3Bucket)(nil)

// PublicURL returns the public address of key.
func (b *S3Bucket) PublicURL(key string) string {
	return b.publicBaseURL + "/" + escapeKey(key)
}

// Put implements Bucket.
func (b *S3Bucket) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	info, err := b.client.PutObject(ctx, b.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object failed: %w", err)
	}

	logger.FromContextOrDefault(ctx, b.logger).Debug("object stored",
		slog.String("bucket", info.Bucket),
		slog.String("key", info.Key),
		slog.Int64("size", info.Size))
	return b.PublicURL(key), nil
}
