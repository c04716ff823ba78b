package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/growlocal360/maxx-energy/internal/richtext"
)

// Employment types accepted for job postings.
const (
	EmploymentFullTime   = "Full-time"
	EmploymentPartTime   = "Part-time"
	EmploymentContract   = "Contract"
	EmploymentInternship = "Internship"
)

// JobPosting is a careers page listing. A posting whose ExpiresAt has passed
// is hidden from public reads.
type JobPosting struct {
	ID             uuid.UUID      `db:"id"              json:"id"`
	Title          string         `db:"title"           json:"title"`
	Slug           string         `db:"slug"            json:"slug"`
	Department     string         `db:"department"      json:"department"`
	Location       string         `db:"location"        json:"location"`
	EmploymentType string         `db:"employment_type" json:"employment_type"`
	Description    *richtext.Node `db:"description"     json:"description"`
	Requirements   *richtext.Node `db:"requirements"    json:"requirements"`
	SalaryRange    string         `db:"salary_range"    json:"salary_range"`
	Published      bool           `db:"published"       json:"published"`
	PublishedAt    *time.Time     `db:"published_at"    json:"published_at"`
	ExpiresAt      *time.Time     `db:"expires_at"      json:"expires_at"`
	CreatedAt      time.Time      `db:"created_at"      json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"      json:"updated_at"`

	Excerpt          string `db:"-" json:"excerpt,omitempty"`
	HTML             string `db:"-" json:"html,omitempty"`
	RequirementsHTML string `db:"-" json:"requirements_html,omitempty"`
}

func (j JobPosting) EntityID() uuid.UUID { return j.ID }

func (j JobPosting) EntitySlug() string { return j.Slug }

func (j *JobPosting) Present(detail bool) {
	j.Excerpt = richtext.Excerpt(j.Description, ShalePlayExcerptLength)
	if detail {
		j.HTML = richtext.RenderHTML(j.Description)
		j.RequirementsHTML = richtext.RenderHTML(j.Requirements)
	}
}

// Expired reports whether the posting's expiry is before now.
func (j *JobPosting) Expired(now time.Time) bool {
	return j.ExpiresAt != nil && j.ExpiresAt.Before(now)
}

type JobPostingCreateRequest struct {
	Title          string          `binding:"required,max=255"  db:"title"           json:"title"`
	Slug           string          `binding:"omitempty,max=255" db:"slug"            json:"slug"`
	Department     string          `binding:"max=255"           db:"department"      json:"department"`
	Location       string          `binding:"max=255"           db:"location"        json:"location"`
	EmploymentType string          `binding:"omitempty,oneof=Full-time Part-time Contract Internship" db:"employment_type" json:"employment_type"`
	Description    json.RawMessage `db:"description"            json:"description"`
	Requirements   json.RawMessage `db:"requirements"           json:"requirements"`
	SalaryRange    string          `binding:"max=255"           db:"salary_range"    json:"salary_range"`
	Published      bool            `db:"published"              json:"published"`
	PublishedAt    *time.Time      `db:"published_at"           json:"published_at"`
	ExpiresAt      *time.Time      `db:"expires_at"             json:"expires_at"`
}

func (r *JobPostingCreateRequest) Validate() error {
	if r.EmploymentType == "" {
		r.EmploymentType = EmploymentFullTime
	}
	if r.PublishedAt != nil && r.ExpiresAt != nil && r.ExpiresAt.Before(*r.PublishedAt) {
		return &ValidationError{Field: "expires_at", Message: "must not be before published_at"}
	}
	return nil
}

func (r *JobPostingCreateRequest) Values() (map[string]any, error) {
	return createValues(r, r.Title)
}

type JobPostingUpdateRequest struct {
	Title          *string         `binding:"omitempty,min=1,max=255" db:"title"           json:"title"`
	Slug           *string         `binding:"omitempty,max=255"       db:"slug"            json:"slug"`
	Department     *string         `binding:"omitempty,max=255"       db:"department"      json:"department"`
	Location       *string         `binding:"omitempty,max=255"       db:"location"        json:"location"`
	EmploymentType *string         `binding:"omitempty,oneof=Full-time Part-time Contract Internship" db:"employment_type" json:"employment_type"`
	Description    json.RawMessage `db:"description"                  json:"description"`
	Requirements   json.RawMessage `db:"requirements"                 json:"requirements"`
	SalaryRange    *string         `binding:"omitempty,max=255"       db:"salary_range"    json:"salary_range"`
	Published      *bool           `db:"published"                    json:"published"`
	PublishedAt    *time.Time      `db:"published_at"                 json:"published_at"`
	ExpiresAt      *time.Time      `db:"expires_at"                   json:"expires_at"`
}

func (r *JobPostingUpdateRequest) Validate() error { return nil }

func (r *JobPostingUpdateRequest) Updates() (map[string]any, error) {
	return updateValues(r)
}
