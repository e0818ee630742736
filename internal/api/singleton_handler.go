package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/folio-api/internal/api/shared"
	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/platform/logger"
	"github.com/phrazzld/folio-api/internal/store"
)

// SingletonHandler serves a single-row table such as site settings. T is the
// row and U its partial update payload.
type SingletonHandler[T any, U domain.Record] struct {
	table  store.Table[T]
	name   string
	logger *slog.Logger
}

// NewSingletonHandler creates a SingletonHandler for the row with
// domain.SingletonID.
func NewSingletonHandler[T any, U domain.Record](table store.Table[T], name string, logger *slog.Logger) *SingletonHandler[T, U] {
	if table == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("table cannot be nil for " + name + " handler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SingletonHandler[T, U]{
		table:  table,
		name:   name,
		logger: logger.With(slog.String("component", name+"_handler")),
	}
}

// Get returns the row, or 404 when it has never been created.
func (h *SingletonHandler[T, U]) Get(w http.ResponseWriter, r *http.Request) {
	row, err := h.table.Get(r.Context(), domain.SingletonID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, row)
}

// Update writes only the fields present in the payload and returns the row.
func (h *SingletonHandler[T, U]) Update(w http.ResponseWriter, r *http.Request) {
	var in U
	if err := shared.DecodeAndValidate(r, &in); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	values := in.Assignments()
	row, err := h.table.Update(r.Context(), domain.SingletonID, values)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update "+h.name)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info(h.name+" updated",
		slog.Any("columns", values.Columns()))
	shared.RespondWithJSON(w, r, http.StatusOK, row)
}
