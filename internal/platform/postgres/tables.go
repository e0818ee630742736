package postgres

import (
	"log/slog"
	"time"

	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/store"
)

// Tables bundles a gateway for every portfolio table.
type Tables struct {
	Projects        *Table[domain.Project]
	Skills          *Table[domain.Skill]
	SkillCategories *Table[domain.SkillCategory]
	Experience      *Table[domain.Experience]
	Education       *Table[domain.Education]
	Certificates    *Table[domain.Certificate]
	Messages        *Table[domain.ContactMessage]
	SiteSettings    *Table[domain.SiteSettings]
	AboutMe         *Table[domain.AboutMe]
}

// NewTables binds every portfolio table to db.
func NewTables(db DBTX, timeout time.Duration, logger *slog.Logger) *Tables {
	return &Tables{
		Projects: NewTable[domain.Project](db, TableSpec{
			Name: "projects", Entity: "project", NotFound: store.ErrProjectNotFound,
		}, timeout, logger),
		Skills: NewTable[domain.Skill](db, TableSpec{
			Name: "skills", Entity: "skill", NotFound: store.ErrSkillNotFound,
		}, timeout, logger),
		SkillCategories: NewTable[domain.SkillCategory](db, TableSpec{
			Name: "skill_categories", Entity: "skill category", NotFound: store.ErrSkillCategoryNotFound,
		}, timeout, logger),
		Experience: NewTable[domain.Experience](db, TableSpec{
			Name: "experience", Entity: "experience", NotFound: store.ErrExperienceNotFound,
		}, timeout, logger),
		Education: NewTable[domain.Education](db, TableSpec{
			Name: "education", Entity: "education", NotFound: store.ErrEducationNotFound,
		}, timeout, logger),
		Certificates: NewTable[domain.Certificate](db, TableSpec{
			Name: "certificates", Entity: "certificate", NotFound: store.ErrCertificateNotFound,
		}, timeout, logger),
		Messages: NewTable[domain.ContactMessage](db, TableSpec{
			Name: "contact_messages", Entity: "contact message", NotFound: store.ErrMessageNotFound,
		}, timeout, logger),
		SiteSettings: NewTable[domain.SiteSettings](db, TableSpec{
			Name: "site_settings", Entity: "site settings", NotFound: store.ErrSiteSettingsNotFound,
		}, timeout, logger),
		AboutMe: NewTable[domain.AboutMe](db, TableSpec{
			Name: "about_me", Entity: "about me", NotFound: store.ErrAboutMeNotFound,
		}, timeout, logger),
	}
}

var _ store.Table[domain.Project] = (*Table[domain.Project])(nil)
