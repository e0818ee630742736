package domain

// Project is a portfolio project as stored.
type Project struct {
	ID           int64    `json:"id"           db:"id"`
	Title        string   `json:"title"        db:"title"`
	Description  string   `json:"description"  db:"description"`
	Technologies []string `json:"technologies" db:"technologies"`
	GithubURL    *string  `json:"github_url"   db:"github_url"`
	LiveURL      *string  `json:"live_url"     db:"live_url"`
	ImageURL     *string  `json:"image_url"    db:"image_url"`
	Featured     bool     `json:"featured"     db:"featured"`
}

// ProjectInput is the create and full-replace payload for a project.
type ProjectInput struct {
	Title        string   `json:"title"        validate:"required"`
	Description  string   `json:"description"  validate:"required"`
	Technologies []string `json:"technologies" validate:"required"`
	GithubURL    *string  `json:"github_url"`
	LiveURL      *string  `json:"live_url"`
	ImageURL     *string  `json:"image_url"`
	Featured     bool     `json:"featured"`
}

// Assignments implements Record.
func (p ProjectInput) Assignments() Assignments {
	return Assignments{
		{Column: "title", Value: p.Title},
		{Column: "description", Value: p.Description},
		{Column: "technologies", Value: p.Technologies},
		{Column: "github_url", Value: nullable(p.GithubURL)},
		{Column: "live_url", Value: nullable(p.LiveURL)},
		{Column: "image_url", Value: nullable(p.ImageURL)},
		{Column: "featured", Value: p.Featured},
	}
}
