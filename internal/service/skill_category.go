package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/platform/logger"
	"github.com/phrazzld/folio-api/internal/platform/metrics"
	"github.com/phrazzld/folio-api/internal/store"
)

// SkillCategoryService deletes skill categories, moving their skills to
// another category first when asked to.
type SkillCategoryService struct {
	categories store.Table[domain.SkillCategory]
	skills     store.Table[domain.Skill]
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewSkillCategoryService creates a SkillCategoryService. It returns an error
// if either table is nil. m may be nil.
func NewSkillCategoryService(
	categories store.Table[domain.SkillCategory],
	skills store.Table[domain.Skill],
	m *metrics.Metrics,
	logger *slog.Logger,
) (*SkillCategoryService, error) {
	if categories == nil {
		return nil, &ServiceError{Service: "skill_category", Operation: "create_service", Message: "categories cannot be nil"}
	}
	if skills == nil {
		return nil, &ServiceError{Service: "skill_category", Operation: "create_service", Message: "skills cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SkillCategoryService{
		categories: categories,
		skills:     skills,
		metrics:    m,
		logger:     logger.With(slog.String("component", "skill_category_service")),
	}, nil
}

// Delete removes the category with the given id.
//
// A category without skills is deleted directly. A category with skills is
// only deleted when migrateTo names another existing category; every skill is
// then moved there, one update at a time, before the category is removed.
// If any step after the first move fails, the moved skills are moved back,
// the category is kept and an error wrapping ErrMigrationIncomplete is
// returned.
func (s *SkillCategoryService) Delete(ctx context.Context, id int64, migrateTo *int64) (domain.MigrationResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("category_id", id))

	category, err := s.categories.Get(ctx, id)
	if err != nil {
		s.metrics.RecordCategoryDeletion(metrics.CategoryFailed, 0)
		return domain.MigrationResult{}, NewServiceError("skill_category", "delete", "failed to look up category", err)
	}

	dependents, err := s.skills.List(ctx, store.Query{
		Filters: []store.Filter{store.Eq("category", category.Name)},
		Order:   []store.Order{store.Asc("id")},
	})
	if err != nil {
		s.metrics.RecordCategoryDeletion(metrics.CategoryFailed, 0)
		return domain.MigrationResult{}, NewServiceError("skill_category", "delete", "failed to list skills", err)
	}

	if len(dependents) == 0 {
		if err := s.categories.Delete(ctx, id); err != nil {
			s.metrics.RecordCategoryDeletion(metrics.CategoryFailed, 0)
			return domain.MigrationResult{}, NewServiceError("skill_category", "delete", "failed to delete category", err)
		}
		s.metrics.RecordCategoryDeletion(metrics.CategoryDeleted, 0)
		log.Info("skill category deleted", slog.String("category", category.Name))
		return domain.MigrationResult{Success: true, Migrated: 0}, nil
	}

	if migrateTo == nil {
		s.metrics.RecordCategoryDeletion(metrics.CategoryBlocked, 0)
		log.Info("skill category deletion blocked by dependent skills",
			slog.String("category", category.Name),
			slog.Int("skills", len(dependents)))
		return domain.MigrationResult{}, &MigrationRequiredError{Category: category.Name, SkillCount: len(dependents)}
	}
	if *migrateTo == id {
		s.metrics.RecordCategoryDeletion(metrics.CategoryBlocked, 0)
		return domain.MigrationResult{}, domain.NewValidationError("migrate_to", "must name a different category", nil)
	}

	target, err := s.categories.Get(ctx, *migrateTo)
	if err != nil {
		s.metrics.RecordCategoryDeletion(metrics.CategoryFailed, 0)
		if store.IsNotFoundError(err) {
			return domain.MigrationResult{}, ErrMigrationTargetNotFound
		}
		return domain.MigrationResult{}, NewServiceError("skill_category", "delete", "failed to look up target category", err)
	}

	moved := make([]int64, 0, len(dependents))
	for _, skill := range dependents {
		_, err := s.skills.Update(ctx, skill.ID, domain.CategoryAssignment(target.Name))
		if errors.Is(err, store.ErrNotFound) {
			// Deleted since the listing; nothing left to move.
			log.Debug("skill vanished during migration", slog.Int64("skill_id", skill.ID))
			continue
		}
		if err != nil {
			s.compensate(ctx, log, moved, category.Name)
			s.metrics.RecordCategoryDeletion(metrics.CategoryFailed, 0)
			return domain.MigrationResult{}, s.incomplete("migrate", skill.ID, len(moved), err)
		}
		moved = append(moved, skill.ID)
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		s.compensate(ctx, log, moved, category.Name)
		s.metrics.RecordCategoryDeletion(metrics.CategoryFailed, 0)
		return domain.MigrationResult{}, s.incomplete("delete", id, len(moved), err)
	}

	s.metrics.RecordCategoryDeletion(metrics.CategoryMigrated, len(moved))
	log.Info("skill category deleted after migration",
		slog.String("category", category.Name),
		slog.String("target", target.Name),
		slog.Int("migrated", len(moved)))
	return domain.MigrationResult{Success: true, Migrated: len(moved)}, nil
}

// compensate moves the given skills back to the original category. It runs
// even when ctx has been cancelled and logs, rather than returns, failures.
func (s *SkillCategoryService) compensate(ctx context.Context, log *slog.Logger, skillIDs []int64, original string) {
	if len(skillIDs) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)

	reverted := 0
	for _, skillID := range skillIDs {
		if _, err := s.skills.Update(ctx, skillID, domain.CategoryAssignment(original)); err != nil {
			log.Error("failed to revert migrated skill",
				slog.Int64("skill_id", skillID),
				slog.String("category", original),
				slog.String("error", err.Error()))
			continue
		}
		reverted++
	}

	log.Warn("skill migration rolled back",
		slog.Int("moved", len(skillIDs)),
		slog.Int("reverted", reverted))
}

func (s *SkillCategoryService) incomplete(op string, id int64, moved int, err error) error {
	return &ServiceError{
		Service:   "skill_category",
		Operation: op,
		Message:   fmt.Sprintf("stopped at id %d after moving %d skills", id, moved),
		Err:       fmt.Errorf("%w: %w", ErrMigrationIncomplete, err),
	}
}
