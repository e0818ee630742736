package domain

import "time"

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        int64     `json:"id"        db:"id"`
	Name      string    `json:"name"      db:"name"`
	Email     string    `json:"email"     db:"email"`
	Subject   *string   `json:"subject"   db:"subject"`
	Message   string    `json:"message"   db:"message"`
	Read      bool      `json:"read"      db:"read"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// ContactInput is the public contact form payload.
type ContactInput struct {
	Name    string  `json:"name"    validate:"required"`
	Email   string  `json:"email"   validate:"required,email"`
	Subject *string `json:"subject"`
	Message string  `json:"message" validate:"required"`
}

// Assignments implements Record. New messages always start unread; the store
// stamps the submission time.
func (c ContactInput) Assignments() Assignments {
	return Assignments{
		{Column: "name", Value: c.Name},
		{Column: "email", Value: c.Email},
		{Column: "subject", Value: nullable(c.Subject)},
		{Column: "message", Value: c.Message},
		{Column: "read", Value: false},
	}
}

// MarkRead is the update that flags a message as read.
func MarkRead() Assignments {
	return Assignments{{Column: "read", Value: true}}
}

// ContactReceipt acknowledges a contact submission.
type ContactReceipt struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Stats holds the admin dashboard counters.
type Stats struct {
	TotalProjects    int64 `json:"total_projects"`
	FeaturedProjects int64 `json:"featured_projects"`
	TotalSkills      int64 `json:"total_skills"`
	TotalExperience  int64 `json:"total_experience"`
	TotalMessages    int64 `json:"total_messages"`
	UnreadMessages   int64 `json:"unread_messages"`
}
