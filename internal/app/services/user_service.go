package services

import (
	"fmt"

	"github.com/finsaarthi/scholarhub/internal/app/models"
	"github.com/finsaarthi/scholarhub/internal/app/models/dto"
	"github.com/finsaarthi/scholarhub/internal/pkg/apperrors"
	"github.com/finsaarthi/scholarhub/internal/pkg/auth"
	"github.com/finsaarthi/scholarhub/internal/pkg/validation"
	"github.com/finsaarthi/scholarhub/internal/store"
)

// Document kinds accepted by profile uploads
const (
	DocumentKindPhoto  = "photo"
	DocumentKindResume = "resume"
)

// UserService defines the interface for profile operations
type UserService interface {
	GetProfile(userID string) (models.User, error)
	UpdateProfile(userID string, req dto.UpdateProfileRequest) (models.User, error)
	AttachDocument(userID, kind, url string) (models.User, error)
	ListUsers() []models.User
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	store *store.Store
}

// NewUserService creates a new user service instance
func NewUserService(st *store.Store) UserService {
	return &userServiceImpl{store: st}
}

// GetProfile returns the full user record.
func (s *userServiceImpl) GetProfile(userID string) (models.User, error) {
	return s.store.FindUserByID(userID)
}

// UpdateProfile validates and merges a partial profile update. A
// password change additionally requires the correct current password.
func (s *userServiceImpl) UpdateProfile(userID string, req dto.UpdateProfileRequest) (models.User, error) {
	user, err := s.store.FindUserByID(userID)
	if err != nil {
		return models.User{}, err
	}

	if err := validateProfileUpdate(req); err != nil {
		return models.User{}, err
	}

	patch := models.UserPatch{
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		Education:   req.Education,
		DateOfBirth: req.DateOfBirth,
		Photo:       req.Photo,
		Resume:      req.Resume,
	}

	if req.Email != nil && *req.Email != user.Email {
		if s.store.EmailExists(*req.Email) {
			return models.User{}, apperrors.ErrEmailAlreadyExists
		}
		patch.Email = req.Email
	}

	if req.NewPassword != nil {
		if req.CurrentPassword == nil {
			return models.User{}, fmt.Errorf("%w: current password is required to change password", apperrors.ErrValidationFailed)
		}
		if !auth.CheckPassword(user.Password, *req.CurrentPassword) {
			return models.User{}, apperrors.ErrWrongCurrentPassword
		}
		if !validation.IsValidPassword(*req.NewPassword) {
			return models.User{}, fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrInvalidPassword, validation.PasswordMinLength)
		}
		hash, err := auth.HashPassword(*req.NewPassword)
		if err != nil {
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
		patch.Password = &hash
	}

	return s.store.UpdateUser(userID, patch)
}

// AttachDocument records the stored location of an uploaded profile
// document on the user.
func (s *userServiceImpl) AttachDocument(userID, kind, url string) (models.User, error) {
	patch := models.UserPatch{}
	switch kind {
	case DocumentKindPhoto:
		patch.Photo = &url
	case DocumentKindResume:
		patch.Resume = &url
	default:
		return models.User{}, fmt.Errorf("%w: unknown document kind %q", apperrors.ErrValidationFailed, kind)
	}
	return s.store.UpdateUser(userID, patch)
}

// ListUsers returns every account, admin view only.
func (s *userServiceImpl) ListUsers() []models.User {
	return s.store.ListUsers()
}

// validateProfileUpdate checks the optional profile fields that carry a
// format.
func validateProfileUpdate(req dto.UpdateProfileRequest) error {
	if req.Email != nil && !validation.IsValidEmail(*req.Email) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrInvalidEmail)
	}
	if req.Phone != nil && *req.Phone != "" && !validation.IsValidPhone(*req.Phone) {
		return fmt.Errorf("%w: invalid phone number", apperrors.ErrValidationFailed)
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" && !validation.IsValidDate(*req.DateOfBirth) {
		return fmt.Errorf("%w: date of birth must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}
	if req.Photo != nil && *req.Photo != "" && !validation.IsValidURL(*req.Photo) {
		return fmt.Errorf("%w: invalid photo URL", apperrors.ErrValidationFailed)
	}
	if req.Resume != nil && *req.Resume != "" && !validation.IsValidURL(*req.Resume) {
		return fmt.Errorf("%w: invalid resume URL", apperrors.ErrValidationFailed)
	}
	return nil
}
