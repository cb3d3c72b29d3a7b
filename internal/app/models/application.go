package models

import (
	"time"
)

// StudentDetails is the applicant snapshot captured at submission time.
// It is deliberately independent of later edits to the User record.
type StudentDetails struct {
	Name      string   `json:"name" example:"Rahul Kumar"`
	Email     string   `json:"email" example:"student@example.com"`
	Phone     string   `json:"phone" example:"+91-9876543210"`
	Address   string   `json:"address"`
	Education string   `json:"education" example:"B.Tech Computer Science"`
	GPA       float64  `json:"gpa" example:"87.5"` // Percentage, 0-100
	Documents []string `json:"documents"`          // Document names or upload paths
}

// Application is the join record between a student User and a Scholarship
type Application struct {
	ID             string            `json:"id" example:"7d2c4b1a-9e8f-4a3b-8c5d-6e7f8a9b0c1d"`
	StudentID      string            `json:"studentId"`
	ScholarshipID  string            `json:"scholarshipId"`
	Status         ApplicationStatus `json:"status" example:"pending"`
	SubmittedAt    time.Time         `json:"submittedAt" example:"2024-05-10T09:30:00Z"` // Set once at creation, immutable
	StudentDetails StudentDetails    `json:"studentDetails"`
	AdminNotes     *string           `json:"adminNotes,omitempty"`
}
