package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/folio-api/internal/api/shared"
	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/platform/logger"
	"github.com/phrazzld/folio-api/internal/store"
)

// MessageHandler serves the admin view of contact messages.
type MessageHandler struct {
	messages store.Table[domain.ContactMessage]
	logger   *slog.Logger
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(messages store.Table[domain.ContactMessage], logger *slog.Logger) *MessageHandler {
	if messages == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("messages cannot be nil for MessageHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MessageHandler{
		messages: messages,
		logger:   logger.With(slog.String("component", "message_handler")),
	}
}

// List handles GET /api/admin/messages, newest first.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.messages.List(r.Context(), store.Query{Order: []store.Order{store.Desc("timestamp")}})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list messages")
		return
	}
	if rows == nil {
		rows = []domain.ContactMessage{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, rows)
}

// MarkRead handles PATCH /api/admin/messages/{id}/read.
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if _, err := h.messages.Update(r.Context(), id, domain.MarkRead()); err != nil {
		HandleAPIError(w, r, err, "Failed to update message")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("message marked read", slog.Int64("id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.SuccessResponse{Success: true})
}

// Delete handles DELETE /api/admin/messages/{id}.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.messages.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete message")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.SuccessResponse{Success: true})
}
