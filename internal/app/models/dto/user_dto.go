package dto

import (
	"time"

	"github.com/finsaarthi/scholarhub/internal/app/models"
)

// UpdateProfileRequest represents a profile update. All fields are
// optional; omitted fields are left untouched.
type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	Education   *string `json:"education,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Photo       *string `json:"photo,omitempty"`
	Resume      *string `json:"resume,omitempty"`

	// Password change requires the current password
	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     *string `json:"newPassword,omitempty"`
}

// UserResponse represents user information with the password hash
// stripped
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role" example:"student"`
	CreatedAt   time.Time `json:"createdAt"`
	Photo       *string   `json:"photo,omitempty"`
	Resume      *string   `json:"resume,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Address     *string   `json:"address,omitempty"`
	Education   *string   `json:"education,omitempty"`
	DateOfBirth *string   `json:"dateOfBirth,omitempty"`
}

// NewUserResponse maps a user model to its API representation.
func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        string(user.Role),
		CreatedAt:   user.CreatedAt,
		Photo:       user.Photo,
		Resume:      user.Resume,
		Phone:       user.Phone,
		Address:     user.Address,
		Education:   user.Education,
		DateOfBirth: user.DateOfBirth,
	}
}

// NewUserResponses maps a slice of user models.
func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// DocumentUploadResponse returns the stored location of an uploaded
// profile document
type DocumentUploadResponse struct {
	Kind string `json:"kind" example:"resume"`
	URL  string `json:"url" example:"/uploads/resumes/7c9e6679.pdf"`
}
