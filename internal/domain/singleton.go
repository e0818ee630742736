package domain

import (
	"errors"
	"fmt"
)

// SocialLink is one entry of the site's social links.
type SocialLink struct {
	Platform string `json:"platform" validate:"required"`
	URL      string `json:"url"      validate:"required,url"`
	Icon     string `json:"icon,omitempty"`
}

// Highlight is one card of the about-me highlights.
type Highlight struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}

// SiteSettings is the site-wide configuration singleton.
type SiteSettings struct {
	ID                int64        `json:"id"                 db:"id"`
	FullName          string       `json:"full_name"          db:"full_name"`
	Title             string       `json:"title"              db:"title"`
	Tagline           string       `json:"tagline"            db:"tagline"`
	Bio               string       `json:"bio"                db:"bio"`
	ProfileImageURL   *string      `json:"profile_image_url"  db:"profile_image_url"`
	ResumeURL         *string      `json:"resume_url"         db:"resume_url"`
	LogoURL           *string      `json:"logo_url"           db:"logo_url"`
	Email             *string      `json:"email"              db:"email"`
	Phone             *string      `json:"phone"              db:"phone"`
	Location          *string      `json:"location"           db:"location"`
	SocialLinks       []SocialLink `json:"social_links"       db:"social_links"`
	YearsExperience   string       `json:"years_experience"   db:"years_experience"`
	ProjectsCompleted string       `json:"projects_completed" db:"projects_completed"`
	LinesOfCode       string       `json:"lines_of_code"      db:"lines_of_code"`
	SiteTitle         string       `json:"site_title"         db:"site_title"`
	SiteDescription   *string      `json:"site_description"   db:"site_description"`
}

// SiteSettingsUpdate is a partial update of the site settings. Only fields
// present in the payload are written; null clears a nullable column.
type SiteSettingsUpdate struct {
	FullName          Optional[string]       `json:"full_name"`
	Title             Optional[string]       `json:"title"`
	Tagline           Optional[string]       `json:"tagline"`
	Bio               Optional[string]       `json:"bio"`
	ProfileImageURL   Optional[string]       `json:"profile_image_url"`
	ResumeURL         Optional[string]       `json:"resume_url"`
	LogoURL           Optional[string]       `json:"logo_url"`
	Email             Optional[string]       `json:"email"`
	Phone             Optional[string]       `json:"phone"`
	Location          Optional[string]       `json:"location"`
	SocialLinks       Optional[[]SocialLink] `json:"social_links"`
	YearsExperience   Optional[string]       `json:"years_experience"`
	ProjectsCompleted Optional[string]       `json:"projects_completed"`
	LinesOfCode       Optional[string]       `json:"lines_of_code"`
	SiteTitle         Optional[string]       `json:"site_title"`
	SiteDescription   Optional[string]       `json:"site_description"`
}

// Assignments implements Record.
func (u SiteSettingsUpdate) Assignments() Assignments {
	var a Assignments
	a = setIfPresent(a, "full_name", u.FullName)
	a = setIfPresent(a, "title", u.Title)
	a = setIfPresent(a, "tagline", u.Tagline)
	a = setIfPresent(a, "bio", u.Bio)
	a = setIfPresent(a, "profile_image_url", u.ProfileImageURL)
	a = setIfPresent(a, "resume_url", u.ResumeURL)
	a = setIfPresent(a, "logo_url", u.LogoURL)
	a = setIfPresent(a, "email", u.Email)
	a = setIfPresent(a, "phone", u.Phone)
	a = setIfPresent(a, "location", u.Location)
	a = setIfPresent(a, "social_links", u.SocialLinks)
	a = setIfPresent(a, "years_experience", u.YearsExperience)
	a = setIfPresent(a, "projects_completed", u.ProjectsCompleted)
	a = setIfPresent(a, "lines_of_code", u.LinesOfCode)
	a = setIfPresent(a, "site_title", u.SiteTitle)
	a = setIfPresent(a, "site_description", u.SiteDescription)
	return a
}

func (u SiteSettingsUpdate) check() error {
	required := []struct {
		field string
		value Optional[string]
	}{
		{"full_name", u.FullName},
		{"title", u.Title},
		{"tagline", u.Tagline},
		{"bio", u.Bio},
		{"years_experience", u.YearsExperience},
		{"projects_completed", u.ProjectsCompleted},
		{"lines_of_code", u.LinesOfCode},
		{"site_title", u.SiteTitle},
	}
	for _, r := range required {
		if err := requireNonNull(r.field, r.value); err != nil {
			return err
		}
	}
	if err := requireNonNull("social_links", u.SocialLinks); err != nil {
		return err
	}
	return validateEach("social_links", u.SocialLinks.Value)
}

// AboutMe is the about-me content singleton.
type AboutMe struct {
	ID           int64       `json:"id"            db:"id"`
	JourneyTitle string      `json:"journey_title" db:"journey_title"`
	JourneyText  string      `json:"journey_text"  db:"journey_text"`
	Highlights   []Highlight `json:"highlights"    db:"highlights"`
}

// AboutMeUpdate is a partial update of the about-me content.
type AboutMeUpdate struct {
	JourneyTitle Optional[string]      `json:"journey_title"`
	JourneyText  Optional[string]      `json:"journey_text"`
	Highlights   Optional[[]Highlight] `json:"highlights"`
}

// Assignments implements Record.
func (u AboutMeUpdate) Assignments() Assignments {
	var a Assignments
	a = setIfPresent(a, "journey_title", u.JourneyTitle)
	a = setIfPresent(a, "journey_text", u.JourneyText)
	a = setIfPresent(a, "highlights", u.Highlights)
	return a
}

func (u AboutMeUpdate) check() error {
	if err := requireNonNull("journey_title", u.JourneyTitle); err != nil {
		return err
	}
	if err := requireNonNull("journey_text", u.JourneyText); err != nil {
		return err
	}
	if err := requireNonNull("highlights", u.Highlights); err != nil {
		return err
	}
	return validateEach("highlights", u.Highlights.Value)
}

// validateEach validates every element of items, reporting the first failure
// as field[i].name.
func validateEach[T any](field string, items []T) error {
	for i := range items {
		if err := Validate(items[i]); err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				return NewValidationError(fmt.Sprintf("%s[%d].%s", field, i, ve.Field), ve.Message, nil)
			}
			return err
		}
	}
	return nil
}
