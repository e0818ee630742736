package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/folio-api/internal/config"
	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/platform/metrics"
	"github.com/phrazzld/folio-api/internal/platform/postgres"
	"github.com/phrazzld/folio-api/internal/platform/storage"
	"github.com/phrazzld/folio-api/internal/service"
	"github.com/phrazzld/folio-api/internal/service/auth"
	"github.com/phrazzld/folio-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// pool is closed on shutdown; nil when the tables are not postgres-backed.
	pool *pgxpool.Pool

	registry *prometheus.Registry
	metrics  *metrics.Metrics

	// Gateways
	projects        store.Table[domain.Project]
	skills          store.Table[domain.Skill]
	skillCategories store.Table[domain.SkillCategory]
	experience      store.Table[domain.Experience]
	education       store.Table[domain.Education]
	certificates    store.Table[domain.Certificate]
	messages        store.Table[domain.ContactMessage]
	siteSettings    store.Table[domain.SiteSettings]
	aboutMe         store.Table[domain.AboutMe]

	verifier auth.Verifier
	bucket   storage.Bucket

	// Services
	categoryService *service.SkillCategoryService
	statsService    *service.StatsService
	uploadService   *service.UploadService
	contactService  *service.ContactService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db postgres.DBTX,
	verifier auth.Verifier,
	bucket storage.Bucket,
) (*application, error) {
	tables := postgres.NewTables(db, cfg.RemoteTimeout(), logger)

	app := &application{
		config:          cfg,
		logger:          logger,
		projects:        tables.Projects,
		skills:          tables.Skills,
		skillCategories: tables.SkillCategories,
		experience:      tables.Experience,
		education:       tables.Education,
		certificates:    tables.Certificates,
		messages:        tables.Messages,
		siteSettings:    tables.SiteSettings,
		aboutMe:         tables.AboutMe,
		verifier:        verifier,
		bucket:          bucket,
	}
	if err := app.initServices(); err != nil {
		return nil, err
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// initServices creates the metrics registry and the services over the
// application's gateways.
func (app *application) initServices() error {
	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)

	var err error
	app.categoryService, err = service.NewSkillCategoryService(app.skillCategories, app.skills, app.metrics, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create skill category service: %w", err)
	}
	app.statsService = service.NewStatsService(app.projects, app.skills, app.experience, app.messages, app.logger)
	app.uploadService = service.NewUploadService(app.bucket, app.metrics, app.logger)
	app.contactService = service.NewContactService(app.messages, app.logger)
	return nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.pool != nil {
		app.pool.Close()
	}
	app.logger.Info("Application shutdown completed")
}
