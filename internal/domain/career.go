package domain

// Experience is a position held.
type Experience struct {
	ID          int64   `json:"id"          db:"id"`
	Title       string  `json:"title"       db:"title"`
	Company     string  `json:"company"     db:"company"`
	Date        string  `json:"date"        db:"date"`
	Description string  `json:"description" db:"description"`
	LogoURL     *string `json:"logo_url"    db:"logo_url"`
}

// ExperienceInput is the create and full-replace payload for an experience item.
type ExperienceInput struct {
	Title       string  `json:"title"       validate:"required"`
	Company     string  `json:"company"     validate:"required"`
	Date        string  `json:"date"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	LogoURL     *string `json:"logo_url"`
}

// Assignments implements Record.
func (e ExperienceInput) Assignments() Assignments {
	return Assignments{
		{Column: "title", Value: e.Title},
		{Column: "company", Value: e.Company},
		{Column: "date", Value: e.Date},
		{Column: "description", Value: e.Description},
		{Column: "logo_url", Value: nullable(e.LogoURL)},
	}
}

// Education is a degree or course of study.
type Education struct {
	ID          int64   `json:"id"          db:"id"`
	Institution string  `json:"institution" db:"institution"`
	Degree      string  `json:"degree"      db:"degree"`
	Date        string  `json:"date"        db:"date"`
	Description string  `json:"description" db:"description"`
	CGPA        *string `json:"cgpa"        db:"cgpa"`
	LogoURL     *string `json:"logo_url"    db:"logo_url"`
}

// EducationInput is the create and full-replace payload for an education entry.
type EducationInput struct {
	Institution string  `json:"institution" validate:"required"`
	Degree      string  `json:"degree"      validate:"required"`
	Date        string  `json:"date"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	CGPA        *string `json:"cgpa"`
	LogoURL     *string `json:"logo_url"`
}

// Assignments implements Record.
func (e EducationInput) Assignments() Assignments {
	return Assignments{
		{Column: "institution", Value: e.Institution},
		{Column: "degree", Value: e.Degree},
		{Column: "date", Value: e.Date},
		{Column: "description", Value: e.Description},
		{Column: "cgpa", Value: nullable(e.CGPA)},
		{Column: "logo_url", Value: nullable(e.LogoURL)},
	}
}

// Certificate is a certification earned.
type Certificate struct {
	ID            int64   `json:"id"             db:"id"`
	Title         string  `json:"title"          db:"title"`
	Issuer        string  `json:"issuer"         db:"issuer"`
	Date          string  `json:"date"           db:"date"`
	Description   string  `json:"description"    db:"description"`
	CredentialURL *string `json:"credential_url" db:"credential_url"`
	LogoURL       *string `json:"logo_url"       db:"logo_url"`
}

// CertificateInput is the create and full-replace payload for a certificate.
type CertificateInput struct {
	Title         string  `json:"title"          validate:"required"`
	Issuer        string  `json:"issuer"         validate:"required"`
	Date          string  `json:"date"           validate:"required"`
	Description   string  `json:"description"    validate:"required"`
	CredentialURL *string `json:"credential_url"`
	LogoURL       *string `json:"logo_url"`
}

// Assignments implements Record.
func (c CertificateInput) Assignments() Assignments {
	return Assignments{
		{Column: "title", Value: c.Title},
		{Column: "issuer", Value: c.Issuer},
		{Column: "date", Value: c.Date},
		{Column: "description", Value: c.Description},
		{Column: "credential_url", Value: nullable(c.CredentialURL)},
		{Column: "logo_url", Value: nullable(c.LogoURL)},
	}
}
