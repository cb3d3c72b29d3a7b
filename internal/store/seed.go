package store

import (
	"time"

	"github.com/finsaarthi/scholarhub/internal/app/models"
	"github.com/finsaarthi/scholarhub/internal/pkg/auth"
)

// Seed credentials, kept stable so a fresh install is immediately usable.
const (
	SeedAdminEmail      = "admin@finsaarthi.com"
	SeedAdminPassword   = "admin123"
	SeedStudentEmail    = "student@example.com"
	SeedStudentPassword = "student123"
)

// SeedAggregate builds the initial dataset used when no persisted
// aggregate exists: one admin, one student, three scholarships and no
// applications. Passwords are hashed here; only the hash ever reaches
// the aggregate file.
func SeedAggregate() Aggregate {
	now := time.Now().UTC()

	adminHash := mustHash(SeedAdminPassword)
	studentHash := mustHash(SeedStudentPassword)

	return Aggregate{
		Users: []models.User{
			{
				ID:        "admin-1",
				Email:     SeedAdminEmail,
				Password:  adminHash,
				Role:      models.RoleAdmin,
				Name:      "Admin User",
				CreatedAt: now,
			},
			{
				ID:        "student-1",
				Email:     SeedStudentEmail,
				Password:  studentHash,
				Role:      models.RoleStudent,
				Name:      "Rahul Kumar",
				CreatedAt: now,
			},
		},
		Scholarships: []models.Scholarship{
			{
				ID:          "sch-1",
				Title:       "Merit-Based Excellence Scholarship",
				Amount:      50000,
				Eligibility: []string{"Minimum 85% marks", "Indian citizen", "Age below 25"},
				Deadline:    "2024-12-31",
				Description: "This scholarship is awarded to students who have demonstrated exceptional academic performance and leadership qualities.",
				Requirements: []string{
					"Academic transcripts",
					"Income certificate",
					"Recommendation letter",
				},
				Provider:  "FinSaarthi Foundation",
				Category:  models.CategoryMerit,
				CreatedAt: now,
				IsActive:  true,
			},
			{
				ID:          "sch-2",
				Title:       "Need-Based Financial Aid",
				Amount:      30000,
				Eligibility: []string{"Family income below ₹3,00,000", "Indian citizen", "Enrolled in recognized institution"},
				Deadline:    "2024-11-30",
				Description: "Financial assistance for students from economically disadvantaged backgrounds to pursue higher education.",
				Requirements: []string{
					"Income certificate",
					"Bank statements",
					"Educational documents",
				},
				Provider:  "Government of India",
				Category:  models.CategoryNeed,
				CreatedAt: now,
				IsActive:  true,
			},
			{
				ID:          "sch-3",
				Title:       "STEM Innovation Scholarship",
				Amount:      75000,
				Eligibility: []string{"STEM field student", "Minimum 80% marks", "Research project submission"},
				Deadline:    "2025-01-15",
				Description: "Supporting innovative students in Science, Technology, Engineering, and Mathematics fields.",
				Requirements: []string{
					"Research proposal",
					"Academic records",
					"Project portfolio",
				},
				Provider:  "Tech Innovation Council",
				Category:  models.CategoryFieldSpecific,
				CreatedAt: now,
				IsActive:  true,
			},
		},
		Applications: []models.Application{},
	}
}

// mustHash hashes a seed password. Bcrypt only fails on invalid cost,
// which would be a programming error.
func mustHash(password string) string {
	hash, err := auth.HashPassword(password)
	if err != nil {
		panic(err)
	}
	return hash
}
