package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tantsuball/internal/errors"
	"tantsuball/internal/inventory"
	"tantsuball/internal/messaging"
	"tantsuball/internal/repository"
	"tantsuball/internal/session"
)

func testServices(t *testing.T) *Services {
	t.Helper()

	inv, err := inventory.Load()
	require.NoError(t, err)

	repos := repository.NewRepositories(inv, 0)

	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "sessions.json"))
	require.NoError(t, err)

	natsClient, err := messaging.NewNATSClient(messaging.Config{})
	require.NoError(t, err)

	return NewServices(repos, store, natsClient)
}

func TestLoginStripsPassword(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()

	resp, err := svc.Auth.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)

	assert.Equal(t, "1", resp.User.ID)
	assert.Equal(t, "Test User", resp.User.Name)
	assert.Empty(t, resp.User.Password)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()

	_, err := svc.Auth.Login(ctx, "test@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Auth.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegisterEmailInUse(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()

	_, err := svc.Auth.Register(ctx, "Someone", "test@example.com", "another123")
	assert.ErrorIs(t, err, apperrors.ErrEmailInUse)

	// The failed registration must not have established a session
	_, err = svc.Auth.Restore(ctx, "no-such-token")
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
}

func TestRegisterThenLogin(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()

	resp, err := svc.Auth.Register(ctx, "New Dancer", "dancer@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "2", resp.User.ID)
	assert.Empty(t, resp.User.Password)

	// The registered user can log in again later
	again, err := svc.Auth.Login(ctx, "dancer@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, again.User.ID)
}

func TestRestoreSession(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()

	login, err := svc.Auth.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)

	restored, err := svc.Auth.Restore(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", restored.User.ID)
	assert.Empty(t, restored.User.Password)
}

func TestLogoutClearsSession(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()

	login, err := svc.Auth.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, svc.Auth.Logout(ctx, login.Token))

	_, err = svc.Auth.Restore(ctx, login.Token)
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
}
