package api

import (
	"context"
	"log/slog"
	"net/http"
	"sort"

	"github.com/phrazzld/folio-api/internal/api/shared"
	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/store"
)

// CategoryDeleter deletes a skill category, migrating its skills first when
// migrateTo is set.
type CategoryDeleter interface {
	Delete(ctx context.Context, id int64, migrateTo *int64) (domain.MigrationResult, error)
}

// SkillCategoryHandler handles skill category requests.
type SkillCategoryHandler struct {
	*ResourceHandler[domain.SkillCategory, domain.SkillCategoryInput]
	skills  store.Table[domain.Skill]
	deleter CategoryDeleter
}

// NewSkillCategoryHandler creates a SkillCategoryHandler. Categories are
// listed by name.
func NewSkillCategoryHandler(
	categories store.Table[domain.SkillCategory],
	skills store.Table[domain.Skill],
	deleter CategoryDeleter,
	logger *slog.Logger,
) *SkillCategoryHandler {
	if skills == nil || deleter == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("skills and deleter cannot be nil for SkillCategoryHandler")
	}
	return &SkillCategoryHandler{
		ResourceHandler: NewResourceHandler[domain.SkillCategory, domain.SkillCategoryInput](
			categories, "skill_category", []store.Order{store.Asc("name")}, logger),
		skills:  skills,
		deleter: deleter,
	}
}

// Delete handles DELETE /api/admin/skill-categories/{id}[?migrate_to=id].
func (h *SkillCategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var migrateTo *int64
	if raw := r.URL.Query().Get("migrate_to"); raw != "" {
		target, err := shared.ParseID("migrate_to", raw)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		migrateTo = &target
	}

	result, err := h.deleter.Delete(r.Context(), id, migrateTo)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete category")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// CategoriesResponse is the body of the legacy category listing.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ListDistinct handles GET /api/skills/categories: the distinct category
// names referenced by skills, sorted.
func (h *SkillCategoryHandler) ListDistinct(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skills.List(r.Context(), store.Query{})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list categories")
		return
	}

	seen := make(map[string]struct{}, len(skills))
	names := []string{}
	for _, s := range skills {
		if _, ok := seen[s.Category]; ok {
			continue
		}
		seen[s.Category] = struct{}{}
		names = append(names, s.Category)
	}
	sort.Strings(names)

	shared.RespondWithJSON(w, r, http.StatusOK, CategoriesResponse{Categories: names})
}
