package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/folio-api/internal/api"
	apiMiddleware "github.com/phrazzld/folio-api/internal/api/middleware"
	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// adminResource is a handler with the admin write operations of a table.
type adminResource interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.Metrics(app.metrics))
	r.Use(middleware.Recoverer)

	byIDAsc := []store.Order{store.Asc("id")}
	byIDDesc := []store.Order{store.Desc("id")}

	projects := api.NewResourceHandler[domain.Project, domain.ProjectInput](
		app.projects, "project", byIDAsc, app.logger, api.BoolParam("featured", "featured"))
	skills := api.NewResourceHandler[domain.Skill, domain.SkillInput](
		app.skills, "skill", byIDAsc, app.logger, api.ListParam{Name: "category", Column: "category"})
	experience := api.NewResourceHandler[domain.Experience, domain.ExperienceInput](
		app.experience, "experience", byIDDesc, app.logger)
	education := api.NewResourceHandler[domain.Education, domain.EducationInput](
		app.education, "education", byIDDesc, app.logger)
	certificates := api.NewResourceHandler[domain.Certificate, domain.CertificateInput](
		app.certificates, "certificate", byIDDesc, app.logger)
	categories := api.NewSkillCategoryHandler(app.skillCategories, app.skills, app.categoryService, app.logger)
	messages := api.NewMessageHandler(app.messages, app.logger)
	settings := api.NewSingletonHandler[domain.SiteSettings, domain.SiteSettingsUpdate](
		app.siteSettings, "site_settings", app.logger)
	about := api.NewSingletonHandler[domain.AboutMe, domain.AboutMeUpdate](
		app.aboutMe, "about_me", app.logger)
	upload := api.NewUploadHandler(app.uploadService, app.config.Server.MaxUploadBytes, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.verifier)

	r.Get("/", api.BannerHandler)
	r.Get("/health", api.HealthHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		// Public read endpoints
		r.Get("/projects", projects.List)
		r.Get("/projects/{id}", projects.Get)
		r.Get("/skills", skills.List)
		r.Get("/skills/categories", categories.ListDistinct)
		r.Get("/skill-categories", categories.List)
		r.Get("/experience", experience.List)
		r.Get("/education", education.List)
		r.Get("/certificates", certificates.List)
		r.Get("/site-settings", settings.Get)
		r.Get("/about-me", about.Get)
		r.Post("/contact", api.ContactHandler(app.contactService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/upload", upload.ServeHTTP)

			r.Route("/admin", func(r chi.Router) {
				mountAdmin(r, "/projects", projects)
				mountAdmin(r, "/skills", skills)
				mountAdmin(r, "/experience", experience)
				mountAdmin(r, "/education", education)
				mountAdmin(r, "/certificates", certificates)

				r.Post("/skill-categories", categories.Create)
				r.Delete("/skill-categories/{id}", categories.Delete)

				r.Put("/site-settings", settings.Update)
				r.Put("/about-me", about.Update)

				r.Get("/messages", messages.List)
				r.Patch("/messages/{id}/read", messages.MarkRead)
				r.Delete("/messages/{id}", messages.Delete)

				r.Get("/stats", api.StatsHandler(app.statsService))
			})
		})
	})

	return r
}

// mountAdmin registers POST <path>, PUT <path>/{id} and DELETE <path>/{id}.
func mountAdmin(r chi.Router, path string, h adminResource) {
	r.Post(path, h.Create)
	r.Put(path+"/{id}", h.Update)
	r.Delete(path+"/{id}", h.Delete)
}
