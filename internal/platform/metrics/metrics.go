// Package metrics defines the Prometheus metrics exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	CategoriesDeleted *prometheus.CounterVec
	SkillsMigrated    prometheus.Counter
	Uploads           *prometheus.CounterVec
	UploadBytes       prometheus.Counter
}

// New creates the application metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "folio_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and method",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
		CategoriesDeleted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_skill_category_deletions_total",
			Help: "Skill category deletions by outcome (deleted, migrated, blocked, failed)",
		}, []string{"outcome"}),
		SkillsMigrated: factory.NewCounter(prometheus.CounterOpts{
			Name: "folio_skills_migrated_total",
			Help: "Total number of skills moved to another category before a deletion",
		}),
		Uploads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_uploads_total",
			Help: "File uploads by outcome (stored, failed)",
		}, []string{"outcome"}),
		UploadBytes: factory.NewCounter(prometheus.CounterOpts{
			Name: "folio_upload_bytes_total",
			Help: "Total bytes stored through the upload endpoint",
		}),
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, start time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// RecordCategoryDeletion records the outcome of a category deletion and the
// number of skills it moved.
func (m *Metrics) RecordCategoryDeletion(outcome string, migrated int) {
	if m == nil {
		return
	}
	m.CategoriesDeleted.WithLabelValues(outcome).Inc()
	if migrated > 0 {
		m.SkillsMigrated.Add(float64(migrated))
	}
}

// RecordUpload records an upload attempt of size bytes.
func (m *Metrics) RecordUpload(outcome string, size int64) {
	if m == nil {
		return
	}
	m.Uploads.WithLabelValues(outcome).Inc()
	if outcome == UploadStored && size > 0 {
		m.UploadBytes.Add(float64(size))
	}
}

// Outcome labels.
const (
	CategoryDeleted  = "deleted"
	CategoryMigrated = "migrated"
	CategoryBlocked  = "blocked"
	CategoryFailed   = "failed"

	UploadStored = "stored"
	UploadFailed = "failed"
)
