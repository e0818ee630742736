package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/folio-api/internal/api/shared"
	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/platform/logger"
)

// maxMemoryUpload is the portion of a multipart body buffered in memory;
// the rest spills to temporary files.
const maxMemoryUpload = 8 << 20

// StatsProvider returns the admin dashboard counters.
type StatsProvider interface {
	Stats(ctx context.Context) (domain.Stats, error)
}

// StatsHandler handles GET /api/admin/stats.
func StatsHandler(stats StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := stats.Stats(r.Context())
		if err != nil {
			HandleAPIError(w, r, err, "Failed to load stats")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, s)
	}
}

// Uploader stores an uploaded file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)
}

// UploadResponse is the body of a successful upload.
type UploadResponse struct {
	URL string `json:"url"`
}

// UploadHandler handles POST /api/upload.
type UploadHandler struct {
	uploader Uploader
	maxBytes int64
	logger   *slog.Logger
}

// NewUploadHandler creates an UploadHandler accepting bodies of at most
// maxBytes.
func NewUploadHandler(uploader Uploader, maxBytes int64, logger *slog.Logger) *UploadHandler {
	if uploader == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("uploader cannot be nil for UploadHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadHandler{
		uploader: uploader,
		maxBytes: maxBytes,
		logger:   logger.With(slog.String("component", "upload_handler")),
	}
}

// ServeHTTP reads the multipart "file" field and stores it.
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(maxMemoryUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Debug("upload rejected", slog.Int64("limit", tooLarge.Limit))
			HandleAPIError(w, r, domain.NewValidationError("file", "exceeds the maximum upload size", err), "")
			return
		}
		HandleAPIError(w, r, domain.NewValidationError("body", "must be a multipart form", err), "")
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Warn("failed to remove multipart temp files", slog.String("error", err.Error()))
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		HandleAPIError(w, r, domain.NewValidationError("file", "is required", err), "")
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.uploader.Upload(r.Context(), header.Filename, file, header.Size, contentType)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, UploadResponse{URL: url})
}
