package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsaarthi/scholarhub/internal/app/models/dto"
	"github.com/finsaarthi/scholarhub/internal/pkg/apperrors"
	"github.com/finsaarthi/scholarhub/internal/store"
)

func strPtr(s string) *string { return &s }

func TestUpdateProfileMergesFields(t *testing.T) {
	st := newSeededStore(t)
	svc := NewUserService(st)

	updated, err := svc.UpdateProfile("student-1", dto.UpdateProfileRequest{
		Phone:     strPtr("+91-9876543210"),
		Education: strPtr("M.Tech Data Science"),
	})
	require.NoError(t, err)

	// Untouched fields survive the merge
	assert.Equal(t, "Rahul Kumar", updated.Name)
	assert.Equal(t, store.SeedStudentEmail, updated.Email)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+91-9876543210", *updated.Phone)
	require.NotNil(t, updated.Education)
	assert.Equal(t, "M.Tech Data Science", *updated.Education)
}

func TestUpdateProfileValidatesFormats(t *testing.T) {
	svc := NewUserService(newSeededStore(t))

	tests := []struct {
		name    string
		req     dto.UpdateProfileRequest
		wantErr error
	}{
		{"bad email", dto.UpdateProfileRequest{Email: strPtr("not-an-email")}, apperrors.ErrInvalidEmail},
		{"bad phone", dto.UpdateProfileRequest{Phone: strPtr("abc")}, apperrors.ErrValidationFailed},
		{"bad date of birth", dto.UpdateProfileRequest{DateOfBirth: strPtr("15-06-2002")}, apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateProfile("student-1", tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	svc := NewUserService(newSeededStore(t))

	_, err := svc.UpdateProfile("student-1", dto.UpdateProfileRequest{
		Email: strPtr(store.SeedAdminEmail),
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	// Re-submitting the current email is not a conflict
	_, err = svc.UpdateProfile("student-1", dto.UpdateProfileRequest{
		Email: strPtr(store.SeedStudentEmail),
	})
	assert.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	st := newSeededStore(t)
	svc := NewUserService(st)

	_, err := svc.UpdateProfile("student-1", dto.UpdateProfileRequest{
		NewPassword: strPtr("brandnew1"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "current password is required")

	_, err = svc.UpdateProfile("student-1", dto.UpdateProfileRequest{
		CurrentPassword: strPtr("wrong"),
		NewPassword:     strPtr("brandnew1"),
	})
	assert.ErrorIs(t, err, apperrors.ErrWrongCurrentPassword)

	_, err = svc.UpdateProfile("student-1", dto.UpdateProfileRequest{
		CurrentPassword: strPtr(store.SeedStudentPassword),
		NewPassword:     strPtr("short"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)

	_, err = svc.UpdateProfile("student-1", dto.UpdateProfileRequest{
		CurrentPassword: strPtr(store.SeedStudentPassword),
		NewPassword:     strPtr("brandnew1"),
	})
	require.NoError(t, err)

	_, err = st.FindUserByCredentials(store.SeedStudentEmail, "brandnew1")
	assert.NoError(t, err)
	_, err = st.FindUserByCredentials(store.SeedStudentEmail, store.SeedStudentPassword)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAttachDocument(t *testing.T) {
	svc := NewUserService(newSeededStore(t))

	updated, err := svc.AttachDocument("student-1", DocumentKindPhoto, "/uploads/photos/abc.jpg")
	require.NoError(t, err)
	require.NotNil(t, updated.Photo)
	assert.Equal(t, "/uploads/photos/abc.jpg", *updated.Photo)

	updated, err = svc.AttachDocument("student-1", DocumentKindResume, "/uploads/resumes/cv.pdf")
	require.NoError(t, err)
	require.NotNil(t, updated.Resume)
	assert.Equal(t, "/uploads/resumes/cv.pdf", *updated.Resume)

	_, err = svc.AttachDocument("student-1", "certificate", "/uploads/x.pdf")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListUsers(t *testing.T) {
	svc := NewUserService(newSeededStore(t))
	assert.Len(t, svc.ListUsers(), 2)
}
