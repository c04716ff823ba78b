package models

import (
	"time"

	"github.com/google/uuid"
)

// Location is an office or yard. The headquarters sorts first.
type Location struct {
	ID             uuid.UUID `db:"id"              json:"id"`
	Name           string    `db:"name"            json:"name"`
	Address        string    `db:"address"         json:"address"`
	City           string    `db:"city"            json:"city"`
	State          string    `db:"state"           json:"state"`
	Zip            string    `db:"zip"             json:"zip"`
	Phone          string    `db:"phone"           json:"phone"`
	Email          string    `db:"email"           json:"email"`
	IsHeadquarters bool      `db:"is_headquarters" json:"is_headquarters"`
	Lat            *float64  `db:"lat"             json:"lat"`
	Lng            *float64  `db:"lng"             json:"lng"`
	DisplayOrder   int       `db:"display_order"   json:"display_order"`
	Published      bool      `db:"published"       json:"published"`
	CreatedAt      time.Time `db:"created_at"      json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"      json:"updated_at"`
}

func (l Location) EntityID() uuid.UUID { return l.ID }

type LocationCreateRequest struct {
	Name           string   `binding:"required,max=255"           db:"name"            json:"name"`
	Address        string   `binding:"max=255"                    db:"address"         json:"address"`
	City           string   `binding:"max=100"                    db:"city"            json:"city"`
	State          string   `binding:"max=50"                     db:"state"           json:"state"`
	Zip            string   `binding:"max=20"                     db:"zip"             json:"zip"`
	Phone          string   `binding:"max=50"                     db:"phone"           json:"phone"`
	Email          string   `binding:"omitempty,email,max=255"    db:"email"           json:"email"`
	IsHeadquarters bool     `db:"is_headquarters"                 json:"is_headquarters"`
	Lat            *float64 `binding:"omitempty,min=-90,max=90"   db:"lat"             json:"lat"`
	Lng            *float64 `binding:"omitempty,min=-180,max=180" db:"lng"             json:"lng"`
	DisplayOrder   int      `binding:"min=0"                      db:"display_order"   json:"display_order"`
	Published      bool     `db:"published"                       json:"published"`
}

func (r *LocationCreateRequest) Validate() error { return validateCoordinates(r.Lat, r.Lng) }

func (r *LocationCreateRequest) Values() (map[string]any, error) {
	return columnValues(r)
}

type LocationUpdateRequest struct {
	Name           *string  `binding:"omitempty,min=1,max=255"    db:"name"            json:"name"`
	Address        *string  `binding:"omitempty,max=255"          db:"address"         json:"address"`
	City           *string  `binding:"omitempty,max=100"          db:"city"            json:"city"`
	State          *string  `binding:"omitempty,max=50"           db:"state"           json:"state"`
	Zip            *string  `binding:"omitempty,max=20"           db:"zip"             json:"zip"`
	Phone          *string  `binding:"omitempty,max=50"           db:"phone"           json:"phone"`
	Email          *string  `binding:"omitempty,email,max=255"    db:"email"           json:"email"`
	IsHeadquarters *bool    `db:"is_headquarters"                 json:"is_headquarters"`
	Lat            *float64 `binding:"omitempty,min=-90,max=90"   db:"lat"             json:"lat"`
	Lng            *float64 `binding:"omitempty,min=-180,max=180" db:"lng"             json:"lng"`
	DisplayOrder   *int     `binding:"omitempty,min=0"            db:"display_order"   json:"display_order"`
	Published      *bool    `db:"published"                       json:"published"`
}

func (r *LocationUpdateRequest) Validate() error { return validateCoordinates(r.Lat, r.Lng) }

func (r *LocationUpdateRequest) Updates() (map[string]any, error) {
	return updateValues(r)
}
