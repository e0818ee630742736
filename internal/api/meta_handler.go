package api

import (
	"net/http"

	"github.com/phrazzld/folio-api/internal/api/shared"
)

// Version is reported by the service banner.
const Version = "2.0.0"

// Banner is the body of GET /.
type Banner struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// BannerHandler handles GET /.
func BannerHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, Banner{
		Message: "Portfolio API with Database",
		Version: Version,
		Endpoints: map[string]string{
			"projects":     "/api/projects",
			"skills":       "/api/skills",
			"experience":   "/api/experience",
			"education":    "/api/education",
			"certificates": "/api/certificates",
			"contact":      "/api/contact",
			"admin":        "/api/admin/*",
		},
	})
}

// HealthHandler handles GET /health.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
