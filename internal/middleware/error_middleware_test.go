package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/finsaarthi/scholarhub/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"user not found", apperrors.ErrUserNotFound, 404},
		{"scholarship not found", apperrors.ErrScholarshipNotFound, 404},
		{"application not found", apperrors.ErrApplicationNotFound, 404},
		{"already applied", apperrors.ErrAlreadyApplied, 409},
		{"email exists", apperrors.ErrEmailAlreadyExists, 409},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401},
		{"wrong current password", apperrors.ErrWrongCurrentPassword, 401},
		{"token expired", apperrors.ErrTokenExpired, 401},
		{"permission denied", apperrors.ErrPermissionDenied, 403},
		{"inactive scholarship", apperrors.ErrScholarshipInactive, 400},
		{"validation failed", apperrors.ErrValidationFailed, 400},
		{"wrapped validation error", apperrors.NewBadRequestError("bad input"), 400},
		{"unknown error", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}
