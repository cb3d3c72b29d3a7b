package models

import (
	"time"
)

// User defines an account record held in the aggregate
type User struct {
	ID        string    `json:"id" example:"8f14e45f-ceea-4e67-b8b4-97a3f2e1d0c5"` // Opaque unique identifier
	Email     string    `json:"email" example:"student@example.com"`               // Login email, unique by convention
	Password  string    `json:"password,omitempty"`                                // Bcrypt hash; persisted, stripped from API responses by DTOs
	Role      RoleType  `json:"role" example:"student"`                            // student or admin
	Name      string    `json:"name" example:"Rahul Kumar"`                        // Display name
	CreatedAt time.Time `json:"createdAt" example:"2024-01-01T10:00:00Z"`          // Registration timestamp

	// Optional profile fields, filled in over time by the student
	Photo       *string `json:"photo,omitempty" example:"uploads/photos/abc.jpg"`
	Resume      *string `json:"resume,omitempty" example:"uploads/resumes/cv.pdf"`
	Phone       *string `json:"phone,omitempty" example:"+91-9876543210"`
	Address     *string `json:"address,omitempty"`
	Education   *string `json:"education,omitempty" example:"B.Tech Computer Science"`
	DateOfBirth *string `json:"dateOfBirth,omitempty" example:"2002-06-15"`
}

// UserPatch carries a partial user update; nil fields are left untouched.
type UserPatch struct {
	Email       *string
	Password    *string
	Name        *string
	Photo       *string
	Resume      *string
	Phone       *string
	Address     *string
	Education   *string
	DateOfBirth *string
}

// Apply merges the patch onto the user record.
func (p UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Photo != nil {
		u.Photo = p.Photo
	}
	if p.Resume != nil {
		u.Resume = p.Resume
	}
	if p.Phone != nil {
		u.Phone = p.Phone
	}
	if p.Address != nil {
		u.Address = p.Address
	}
	if p.Education != nil {
		u.Education = p.Education
	}
	if p.DateOfBirth != nil {
		u.DateOfBirth = p.DateOfBirth
	}
}
