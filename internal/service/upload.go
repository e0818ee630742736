package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/platform/logger"
	"github.com/phrazzld/folio-api/internal/platform/metrics"
	"github.com/phrazzld/folio-api/internal/platform/storage"
)

// keyTimeLayout prefixes storage keys with the upload second.
const keyTimeLayout = "20060102150405"

// UploadService stores uploaded files in the object store.
type UploadService struct {
	bucket   storage.Bucket
	metrics  *metrics.Metrics
	timeFunc func() time.Time // Injectable for testing
	logger   *slog.Logger
}

// NewUploadService creates an UploadService writing to bucket. m may be nil.
func NewUploadService(bucket storage.Bucket, m *metrics.Metrics, logger *slog.Logger) *UploadService {
	if bucket == nil {
		panic("bucket cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadService{
		bucket:   bucket,
		metrics:  m,
		timeFunc: time.Now,
		logger:   logger.With(slog.String("component", "upload_service")),
	}
}

// WithClock returns a copy of the service using now for storage keys.
func (s *UploadService) WithClock(now func() time.Time) *UploadService {
	c := *s
	c.timeFunc = now
	return &c
}

// Key returns the storage key for filename uploaded at t:
// <YYYYMMDDHHMMSS>_<filename>.
func Key(t time.Time, filename string) string {
	return t.Format(keyTimeLayout) + "_" + filename
}

// Upload stores the file and returns its public URL. Directory components of
// filename are dropped.
func (s *UploadService) Upload(
	ctx context.Context,
	filename string,
	r io.Reader,
	size int64,
	contentType string,
) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return "", domain.NewValidationError("file", "must have a filename", nil)
	}

	key := Key(s.timeFunc(), name)
	url, err := s.bucket.Put(ctx, key, r, size, contentType)
	if err != nil {
		s.metrics.RecordUpload(metrics.UploadFailed, size)
		log.Error("upload failed", slog.String("key", key), slog.String("error", err.Error()))
		return "", &ServiceError{
			Service:   "upload",
			Operation: "put",
			Message:   "object store rejected " + key,
			Err:       fmt.Errorf("%w: %w", ErrUpload, err),
		}
	}

	s.metrics.RecordUpload(metrics.UploadStored, size)
	log.Info("file uploaded",
		slog.String("key", key),
		slog.Int64("size", size),
		slog.String("content_type", contentType))
	return url, nil
}
