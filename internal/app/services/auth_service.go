package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/finsaarthi/scholarhub/internal/app/models"
	"github.com/finsaarthi/scholarhub/internal/app/models/dto"
	"github.com/finsaarthi/scholarhub/internal/pkg/apperrors"
	"github.com/finsaarthi/scholarhub/internal/pkg/auth"
	"github.com/finsaarthi/scholarhub/internal/store"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(req dto.LoginRequest) (dto.AuthResponse, error)
	Refresh(refreshToken string) (dto.AuthResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	store      *store.Store
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(st *store.Store, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		store:      st,
		jwtService: jwtService,
		logger:     logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates a new student account. The store itself does not
// enforce email uniqueness, so the gate lives here.
func (s *authServiceImpl) Register(req dto.RegisterRequest) (dto.AuthResponse, error) {
	if s.store.EmailExists(req.Email) {
		return dto.AuthResponse{}, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := s.store.AddUser(models.User{
		Email:    req.Email,
		Password: hash,
		Role:     models.RoleStudent,
		Name:     req.Name,
	})

	s.logger.Info().Str("userId", user.ID).Msg("User registered")
	return s.issueTokens(user)
}

// Login verifies credentials against the store and issues a token pair.
func (s *authServiceImpl) Login(req dto.LoginRequest) (dto.AuthResponse, error) {
	user, err := s.store.FindUserByCredentials(req.Email, req.Password)
	if err != nil {
		return dto.AuthResponse{}, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Str("userId", user.ID).Msg("User logged in")
	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a fresh pair. The user is
// re-read from the store so role or profile changes are picked up.
func (s *authServiceImpl) Refresh(refreshToken string) (dto.AuthResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return dto.AuthResponse{}, apperrors.ErrTokenInvalid
	}

	user, err := s.store.FindUserByID(claims.UserID)
	if err != nil {
		return dto.AuthResponse{}, apperrors.ErrTokenInvalid
	}

	return s.issueTokens(user)
}

func (s *authServiceImpl) issueTokens(user models.User) (dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(&user)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("error generating tokens: %w", err)
	}

	return dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             expiresIn,
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: refreshExpiresIn,
		},
		User: dto.NewSessionUser(user),
	}, nil
}
