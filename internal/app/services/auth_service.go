// Package services holds the business rules that sit between the HTTP
// controllers and storage. Controllers stay thin; anything involving
// validation, hashing, or sessions lives here.
package services

import (
	"context"
	"strings"

	"github.com/engbowl/engbowl/internal/app/models"
	"github.com/engbowl/engbowl/internal/app/models/dto"
	"github.com/engbowl/engbowl/internal/app/storage"
	"github.com/engbowl/engbowl/internal/pkg/apperrors"
	"github.com/engbowl/engbowl/internal/pkg/auth"
	"github.com/engbowl/engbowl/internal/pkg/logger"
	"github.com/engbowl/engbowl/internal/pkg/validation"
	"github.com/engbowl/engbowl/internal/session"
)

// AuthService implements registration, login, and session lifecycle.
type AuthService struct {
	storage  storage.Storage
	sessions session.Store
}

// NewAuthService creates a new authentication service
func NewAuthService(store storage.Storage, sessions session.Store) *AuthService {
	return &AuthService{
		storage:  store,
		sessions: sessions,
	}
}

// Register validates the request, creates the user, and opens a
// session. Registration is restricted to university email addresses.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, "", err
	}

	existing, err := s.storage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperrors.ErrUsernameTaken
	}

	existing, err = s.storage.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperrors.ErrEmailTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user, err := s.storage.CreateUser(ctx, &models.User{
		Username:       req.Username,
		Password:       hashed,
		Email:          req.Email,
		DisplayName:    req.DisplayName,
		University:     req.University,
		Discipline:     req.Discipline,
		GraduationYear: req.GraduationYear,
		Bio:            req.Bio,
		IsAnonymous:    req.IsAnonymous,
		AvatarURL:      req.AvatarURL,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("User registered")
	return user, token, nil
}

// Login verifies the credentials and opens a session. Unknown users
// and wrong passwords produce the same error so the response does not
// reveal which usernames exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	user, err := s.storage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return user, token, nil
}

// Logout revokes a session token. Revoking an unknown token succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ResolveSession maps a token to its user id
func (s *AuthService) ResolveSession(ctx context.Context, token string) (int64, error) {
	return s.sessions.Get(ctx, token)
}

// CurrentUser loads the user behind a resolved session. A session
// pointing at a deleted user reads as unauthorized.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func validateRegisterRequest(req *dto.RegisterRequest) error {
	if len(strings.TrimSpace(req.Username)) < validation.UsernameMinLength {
		return apperrors.NewValidationError("username", "username must be at least 3 characters")
	}
	if len(strings.TrimSpace(req.DisplayName)) < validation.DisplayNameMinLength {
		return apperrors.NewValidationError("displayName", "display name must be at least 2 characters")
	}
	if !validation.CompiledPatterns.Email.MatchString(req.Email) {
		return apperrors.NewValidationError("email", "invalid email address")
	}
	if !validation.IsUniversityEmail(req.Email) {
		return apperrors.NewValidationError("email", "please use your university email address")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return apperrors.NewValidationError("password", "password must be at least 8 characters")
	}
	if req.Password != req.PasswordConfirm {
		return apperrors.NewValidationError("passwordConfirm", "passwords don't match")
	}
	return nil
}
