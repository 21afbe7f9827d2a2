package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlinaTolchenitsyna/TaskFlow/internal/repository"
)

func TestRegisterNormalizesEmailAndHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	user, err := svc.Register(ctx, "  X@Y.com ", "supersecret")
	require.NoError(t, err)

	assert.Equal(t, "x@y.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "supersecret")
}

func TestAuthenticateIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	registered, err := svc.Register(ctx, "X@Y.com", "supersecret")
	require.NoError(t, err)

	got, err := svc.Authenticate(ctx, "x@y.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, got.ID)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@b.com", "supersecret")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "a@b.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@b.com", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@b.com", "supersecret")
	require.NoError(t, err)

	// Same address in a different case is still a duplicate.
	_, err = svc.Register(ctx, "A@B.com", "othersecret")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}
