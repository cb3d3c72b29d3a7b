package dto

import (
	"github.com/finsaarthi/scholarhub/internal/app/models"
)

// SubmitApplicationRequest carries the applicant snapshot captured at
// submission time
type SubmitApplicationRequest struct {
	Name      string   `json:"name" binding:"required,min=2,max=100"`
	Email     string   `json:"email" binding:"required,email"`
	Phone     string   `json:"phone" binding:"required"`
	Address   string   `json:"address" binding:"required"`
	Education string   `json:"education" binding:"required"`
	GPA       float64  `json:"gpa" binding:"required,gte=0,lte=100"`
	Documents []string `json:"documents"`
}

// UpdateApplicationStatusRequest represents an admin triage decision
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=pending under-review approved rejected"`
	Notes  *string                  `json:"notes,omitempty"`
}

// ApplicationResponse joins the application with its scholarship so
// dashboards can render titles without a second lookup
type ApplicationResponse struct {
	models.Application
	Scholarship *models.Scholarship `json:"scholarship,omitempty"`
}

// AdminStatsResponse carries the admin dashboard counters
type AdminStatsResponse struct {
	TotalUsers          int            `json:"totalUsers"`
	TotalScholarships   int            `json:"totalScholarships"`
	ActiveScholarships  int            `json:"activeScholarships"`
	TotalApplications   int            `json:"totalApplications"`
	ApplicationsByState map[string]int `json:"applicationsByState"`
}
