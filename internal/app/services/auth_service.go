package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/repositories"
	"github.com/alumlink/alumlink/internal/pkg/apperrors"
	"github.com/alumlink/alumlink/internal/pkg/auth"
	"github.com/alumlink/alumlink/internal/pkg/matching"
)

// AuthService handles registration, login and profile retrieval.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error)
}

type authServiceImpl struct {
	userRepo   repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates an account and returns a signed token for it.
func (s *authServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		Password:    hashed,
		Role:        role,
		Skills:      matching.NormalizeSkills(req.Skills),
		Industry:    strings.TrimSpace(req.Industry),
		Location:    strings.TrimSpace(req.Location),
		Connections: []int64{},
		IsActive:    true,
		Joined:      time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return s.buildAuthResponse(user)
}

// Login verifies credentials and returns a fresh token.
func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// A missing account and a wrong password look identical to the caller.
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Int64("userId", user.ID).Msg("User logged in")

	return s.buildAuthResponse(user)
}

// GetProfile returns the authenticated user's own profile.
func (s *authServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		Success: true,
		User: dto.ProfileUser{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			Role:        user.Role,
			Skills:      user.Skills,
			Industry:    user.Industry,
			Location:    user.Location,
			Connections: user.Connections,
		},
	}, nil
}

func (s *authServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, _, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.AuthResponse{
		Success: true,
		Token:   token,
		User: dto.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
