package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsaarthi/scholarhub/internal/app/models"
	"github.com/finsaarthi/scholarhub/internal/app/models/dto"
	"github.com/finsaarthi/scholarhub/internal/pkg/apperrors"
	"github.com/finsaarthi/scholarhub/internal/pkg/auth"
	"github.com/finsaarthi/scholarhub/internal/store"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "finsaarthi.test",
	})
}

func newAuthService(t *testing.T) (AuthService, *store.Store) {
	t.Helper()
	st := newSeededStore(t)
	return NewAuthService(st, newTestJWTService(), zerolog.Nop()), st
}

func TestLoginWithSeededAccounts(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Login(dto.LoginRequest{
		Email:    store.SeedAdminEmail,
		Password: store.SeedAdminPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, string(models.RoleAdmin), resp.User.Role)

	resp, err = svc.Login(dto.LoginRequest{
		Email:    store.SeedStudentEmail,
		Password: store.SeedStudentPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleStudent), resp.User.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", store.SeedAdminEmail, "wrong"},
		{"unknown email", "nobody@example.com", store.SeedAdminPassword},
		{"password of another account", store.SeedAdminEmail, store.SeedStudentPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(dto.LoginRequest{Email: tt.email, Password: tt.password})
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		})
	}
}

func TestRegisterCreatesStudent(t *testing.T) {
	svc, st := newAuthService(t)

	resp, err := svc.Register(dto.RegisterRequest{
		Email:    "priya@example.com",
		Password: "secret123",
		Name:     "Priya Sharma",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleStudent), resp.User.Role)
	assert.NotEmpty(t, resp.User.ID)

	// The stored credential is a hash, yet login with the plain password
	// works
	user, err := st.FindUserByCredentials("priya@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", user.Password)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(dto.RegisterRequest{
		Email:    store.SeedStudentEmail,
		Password: "secret123",
		Name:     "Someone Else",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRefreshTokenFlow(t *testing.T) {
	svc, _ := newAuthService(t)

	login, err := svc.Login(dto.LoginRequest{
		Email:    store.SeedStudentEmail,
		Password: store.SeedStudentPassword,
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(login.Token.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Token.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)

	// An access token is not accepted for refresh
	_, err = svc.Refresh(login.Token.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = svc.Refresh("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
