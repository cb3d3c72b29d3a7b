package dto

import (
	"github.com/finsaarthi/scholarhub/internal/app/models"
)

// CreateScholarshipRequest represents scholarship creation data
type CreateScholarshipRequest struct {
	Title        string   `json:"title" binding:"required,min=3,max=200"`
	Amount       float64  `json:"amount" binding:"required,gt=0"`
	Eligibility  []string `json:"eligibility" binding:"required,min=1"`
	Deadline     string   `json:"deadline" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Requirements []string `json:"requirements" binding:"required,min=1"`
	Provider     string   `json:"provider" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	IsActive     *bool    `json:"isActive,omitempty"`
}

// UpdateScholarshipRequest represents a partial scholarship update
type UpdateScholarshipRequest struct {
	Title        *string   `json:"title,omitempty" binding:"omitempty,min=3,max=200"`
	Amount       *float64  `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Eligibility  *[]string `json:"eligibility,omitempty"`
	Deadline     *string   `json:"deadline,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Requirements *[]string `json:"requirements,omitempty"`
	Provider     *string   `json:"provider,omitempty"`
	Category     *string   `json:"category,omitempty"`
	IsActive     *bool     `json:"isActive,omitempty"`
}

// ScholarshipListQuery captures the search, filter and sort parameters
// of scholarship listings
type ScholarshipListQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	SortBy   string `form:"sortBy" binding:"omitempty,oneof=deadline amount title"`
}

// ScholarshipResponse augments a scholarship with the caller's
// application state so listings can render an "Applied" badge
type ScholarshipResponse struct {
	models.Scholarship
	HasApplied bool `json:"hasApplied"`
}
