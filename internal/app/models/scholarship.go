package models

import (
	"time"
)

// DeadlineLayout is the calendar-date format used for scholarship deadlines.
const DeadlineLayout = "2006-01-02"

// Scholarship defines an offer record held in the aggregate
type Scholarship struct {
	ID           string    `json:"id" example:"c1a7e9d2-5b3f-4e8a-9c6d-0f1e2a3b4c5d"`
	Title        string    `json:"title" example:"STEM Innovation Scholarship"`
	Amount       float64   `json:"amount" example:"75000"`         // Positive currency amount
	Eligibility  []string  `json:"eligibility"`                    // Ordered criterion strings
	Deadline     string    `json:"deadline" example:"2025-01-15"`  // Calendar date, DeadlineLayout
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`                   // Ordered document names
	Provider     string    `json:"provider" example:"Tech Innovation Council"`
	Category     Category  `json:"category" example:"Field-specific"`
	CreatedAt    time.Time `json:"createdAt" example:"2024-01-01T10:00:00Z"`
	IsActive     bool      `json:"isActive" example:"true"` // Soft-delete / visibility flag
}

// DeadlineTime parses the deadline into a time.Time. A zero time and
// false are returned when the stored value is not a valid date.
func (s Scholarship) DeadlineTime() (time.Time, bool) {
	t, err := time.Parse(DeadlineLayout, s.Deadline)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ScholarshipPatch carries a partial scholarship update; nil fields are
// left untouched.
type ScholarshipPatch struct {
	Title        *string
	Amount       *float64
	Eligibility  *[]string
	Deadline     *string
	Description  *string
	Requirements *[]string
	Provider     *string
	Category     *Category
	IsActive     *bool
}

// Apply merges the patch onto the scholarship record.
func (p ScholarshipPatch) Apply(s *Scholarship) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Amount != nil {
		s.Amount = *p.Amount
	}
	if p.Eligibility != nil {
		s.Eligibility = *p.Eligibility
	}
	if p.Deadline != nil {
		s.Deadline = *p.Deadline
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Requirements != nil {
		s.Requirements = *p.Requirements
	}
	if p.Provider != nil {
		s.Provider = *p.Provider
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
}
