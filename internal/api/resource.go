package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/phrazzld/folio-api/internal/api/shared"
	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/platform/logger"
	"github.com/phrazzld/folio-api/internal/store"
)

// ListParam maps an optional query parameter onto an equality filter.
type ListParam struct {
	Name   string
	Column string
	// Parse converts the raw value. A nil Parse filters on the raw string.
	Parse func(raw string) (any, error)
}

// BoolParam is a ListParam whose value must parse as a boolean.
func BoolParam(name, column string) ListParam {
	return ListParam{Name: name, Column: column, Parse: func(raw string) (any, error) {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, domain.NewValidationError(name, "must be a boolean", nil)
		}
		return b, nil
	}}
}

// ResourceHandler serves list, get, create, update and delete for one table.
// T is the stored row and In the create/replace payload.
type ResourceHandler[T any, In domain.Record] struct {
	table  store.Table[T]
	name   string
	order  []store.Order
	params []ListParam
	logger *slog.Logger
}

// NewResourceHandler creates a ResourceHandler. order is applied to every
// list; params are the query parameters the list accepts.
func NewResourceHandler[T any, In domain.Record](
	table store.Table[T],
	name string,
	order []store.Order,
	logger *slog.Logger,
	params ...ListParam,
) *ResourceHandler[T, In] {
	if table == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("table cannot be nil for " + name + " handler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ResourceHandler[T, In]{
		table:  table,
		name:   name,
		order:  order,
		params: params,
		logger: logger.With(slog.String("component", name+"_handler")),
	}
}

// List handles GET /api/<resource>.
func (h *ResourceHandler[T, In]) List(w http.ResponseWriter, r *http.Request) {
	q := store.Query{Order: h.order}
	for _, p := range h.params {
		raw := r.URL.Query().Get(p.Name)
		if raw == "" {
			continue
		}
		var value any = raw
		if p.Parse != nil {
			v, err := p.Parse(raw)
			if err != nil {
				HandleAPIError(w, r, err, "")
				return
			}
			value = v
		}
		q = q.Where(p.Column, value)
	}

	rows, err := h.table.List(r.Context(), q)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list "+h.name)
		return
	}
	if rows == nil {
		rows = []T{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, rows)
}

// Get handles GET /api/<resource>/{id}.
func (h *ResourceHandler[T, In]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	row, err := h.table.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, row)
}

// Create handles POST /api/admin/<resource>.
func (h *ResourceHandler[T, In]) Create(w http.ResponseWriter, r *http.Request) {
	var in In
	if err := shared.DecodeAndValidate(r, &in); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	row, err := h.table.Insert(r.Context(), in.Assignments())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create "+h.name)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info(h.name + " created")
	shared.RespondWithJSON(w, r, http.StatusCreated, row)
}

// Update handles PUT /api/admin/<resource>/{id}. The payload replaces every
// field of the row.
func (h *ResourceHandler[T, In]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var in In
	if err := shared.DecodeAndValidate(r, &in); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	row, err := h.table.Update(r.Context(), id, in.Assignments())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update "+h.name)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info(h.name+" updated", slog.Int64("id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, row)
}

// Delete handles DELETE /api/admin/<resource>/{id}. Deleting a row that does
// not exist succeeds.
func (h *ResourceHandler[T, In]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.table.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete "+h.name)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info(h.name+" deleted", slog.Int64("id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.SuccessResponse{Success: true})
}
