package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engbowl/engbowl/internal/app/models/dto"
	"github.com/engbowl/engbowl/internal/app/storage"
	"github.com/engbowl/engbowl/internal/pkg/apperrors"
	"github.com/engbowl/engbowl/internal/session"
)

func newTestAuthService() *AuthService {
	return NewAuthService(storage.NewMemoryStorage(), session.NewMemoryStore(time.Hour))
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:        "alice",
		Password:        "supersecret",
		PasswordConfirm: "supersecret",
		Email:           "alice@mit.edu",
		DisplayName:     "Alice A",
	}
}

func TestRegisterSuccess(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	user, token, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
	assert.NotZero(t, user.ID)
	// Stored password is a hash, never the plaintext
	assert.NotEqual(t, "supersecret", user.Password)

	resolved, err := svc.ResolveSession(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved)
}

func TestRegisterUniversityEmailRule(t *testing.T) {
	cases := []struct {
		name  string
		email string
		ok    bool
	}{
		{"edu TLD", "alice@mit.edu", true},
		{"university in domain", "bob@university.com", true},
		{"international edu", "carol@campus.edu.br", true},
		{"consumer mail", "dave@gmail.com", false},
		{"corporate mail", "eve@techcorp.com", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestAuthService()
			req := registerRequest()
			req.Email = tc.email

			_, _, err := svc.Register(context.Background(), req)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

				var verr *apperrors.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, "email", verr.Field)
			}
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
		field  string
	}{
		{"short username", func(r *dto.RegisterRequest) { r.Username = "ab" }, "username"},
		{"short display name", func(r *dto.RegisterRequest) { r.DisplayName = "A" }, "displayName"},
		{"malformed email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "short"; r.PasswordConfirm = "short" }, "password"},
		{"password mismatch", func(r *dto.RegisterRequest) { r.PasswordConfirm = "different1" }, "passwordConfirm"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestAuthService()
			req := registerRequest()
			tc.mutate(req)

			_, _, err := svc.Register(context.Background(), req)
			require.Error(t, err)

			var verr *apperrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestRegisterDuplicates(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	// Same username, different case
	dup := registerRequest()
	dup.Username = "ALICE"
	dup.Email = "alice2@mit.edu"
	_, _, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)

	// Same email, different case
	dup = registerRequest()
	dup.Username = "alice2"
	dup.Email = "Alice@MIT.EDU"
	_, _, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)

	// Wrong password and unknown user yield the same error
	_, _, errWrong := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "wrongpass"})
	_, _, errUnknown := svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "supersecret"})
	assert.ErrorIs(t, errWrong, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errWrong, errUnknown)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, token, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = svc.ResolveSession(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	// Logging out twice is fine
	assert.NoError(t, svc.Logout(ctx, token))
}
