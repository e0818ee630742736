package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/platform/logger"
	"github.com/phrazzld/folio-api/internal/store"
)

// Counter counts rows of one table.
type Counter interface {
	Count(ctx context.Context, filters ...store.Filter) (int64, error)
}

// StatsService assembles the admin dashboard counters.
type StatsService struct {
	projects   Counter
	skills     Counter
	experience Counter
	messages   Counter
	logger     *slog.Logger
}

// NewStatsService creates a StatsService over the given tables.
func NewStatsService(projects, skills, experience, messages Counter, logger *slog.Logger) *StatsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsService{
		projects:   projects,
		skills:     skills,
		experience: experience,
		messages:   messages,
		logger:     logger.With(slog.String("component", "stats_service")),
	}
}

// Stats returns the current counters. A failure to count experience entries
// is logged and reported as zero; every other failure is returned.
func (s *StatsService) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	var err error

	counts := []struct {
		name   string
		target *int64
		table  Counter
		filter []store.Filter
	}{
		{"total_projects", &stats.TotalProjects, s.projects, nil},
		{"featured_projects", &stats.FeaturedProjects, s.projects, []store.Filter{store.Eq("featured", true)}},
		{"total_skills", &stats.TotalSkills, s.skills, nil},
		{"total_messages", &stats.TotalMessages, s.messages, nil},
		{"unread_messages", &stats.UnreadMessages, s.messages, []store.Filter{store.Eq("read", false)}},
	}
	for _, c := range counts {
		if *c.target, err = c.table.Count(ctx, c.filter...); err != nil {
			return domain.Stats{}, NewServiceError("stats", "count", "failed to count "+c.name, err)
		}
	}

	stats.TotalExperience, err = s.experience.Count(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("experience count failed, reporting zero",
			slog.String("error", err.Error()))
		stats.TotalExperience = 0
	}

	return stats, nil
}
