package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is a message sent through the public contact form.
type ContactSubmission struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Email     string    `db:"email"      json:"email"`
	Phone     string    `db:"phone"      json:"phone"`
	Company   string    `db:"company"    json:"company"`
	Message   string    `db:"message"    json:"message"`
	Read      bool      `db:"read"       json:"read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (s ContactSubmission) EntityID() uuid.UUID { return s.ID }

type ContactSubmissionRequest struct {
	Name    string `binding:"required,max=255"       db:"name"    json:"name"`
	Email   string `binding:"required,email,max=255" db:"email"   json:"email"`
	Phone   string `binding:"max=50"                 db:"phone"   json:"phone"`
	Company string `binding:"max=255"                db:"company" json:"company"`
	Message string `binding:"required,max=5000"      db:"message" json:"message"`
}

func (r *ContactSubmissionRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Message = strings.TrimSpace(r.Message)
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "must not be blank"}
	}
	if r.Message == "" {
		return &ValidationError{Field: "message", Message: "must not be blank"}
	}
	return nil
}

func (r *ContactSubmissionRequest) Values() (map[string]any, error) {
	return columnValues(r)
}

// ContactReadRequest toggles the read flag from the admin inbox.
type ContactReadRequest struct {
	Read *bool `db:"read" json:"read"`
}

func (r *ContactReadRequest) Validate() error { return nil }

// Updates defaults to marking the submission read when the body is empty.
func (r *ContactReadRequest) Updates() (map[string]any, error) {
	if r.Read == nil {
		read := true
		r.Read = &read
	}
	return updateValues(r)
}
