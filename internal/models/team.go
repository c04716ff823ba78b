package models

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	ID           uuid.UUID `db:"id"            json:"id"`
	Name         string    `db:"name"          json:"name"`
	Title        string    `db:"title"         json:"title"`
	Bio          string    `db:"bio"           json:"bio"`
	PhotoURL     string    `db:"photo_url"     json:"photo_url"`
	Email        string    `db:"email"         json:"email"`
	Phone        string    `db:"phone"         json:"phone"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	Published    bool      `db:"published"     json:"published"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updated_at"`
}

func (m TeamMember) EntityID() uuid.UUID { return m.ID }

type TeamMemberCreateRequest struct {
	Name         string `binding:"required,max=255"        db:"name"          json:"name"`
	Title        string `binding:"max=255"                 db:"title"         json:"title"`
	Bio          string `binding:"max=5000"                db:"bio"           json:"bio"`
	PhotoURL     string `binding:"max=2048"                db:"photo_url"     json:"photo_url"`
	Email        string `binding:"omitempty,email,max=255" db:"email"         json:"email"`
	Phone        string `binding:"max=50"                  db:"phone"         json:"phone"`
	DisplayOrder int    `binding:"min=0"                   db:"display_order" json:"display_order"`
	Published    bool   `db:"published"                    json:"published"`
}

func (r *TeamMemberCreateRequest) Validate() error { return nil }

func (r *TeamMemberCreateRequest) Values() (map[string]any, error) {
	return columnValues(r)
}

type TeamMemberUpdateRequest struct {
	Name         *string `binding:"omitempty,min=1,max=255" db:"name"          json:"name"`
	Title        *string `binding:"omitempty,max=255"       db:"title"         json:"title"`
	Bio          *string `binding:"omitempty,max=5000"      db:"bio"           json:"bio"`
	PhotoURL     *string `binding:"omitempty,max=2048"      db:"photo_url"     json:"photo_url"`
	Email        *string `binding:"omitempty,email,max=255" db:"email"         json:"email"`
	Phone        *string `binding:"omitempty,max=50"        db:"phone"         json:"phone"`
	DisplayOrder *int    `binding:"omitempty,min=0"         db:"display_order" json:"display_order"`
	Published    *bool   `db:"published"                    json:"published"`
}

func (r *TeamMemberUpdateRequest) Validate() error { return nil }

func (r *TeamMemberUpdateRequest) Updates() (map[string]any, error) {
	return updateValues(r)
}
