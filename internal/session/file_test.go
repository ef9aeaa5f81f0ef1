package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	ctx := context.Background()
	id := Identity{
		Token:   "tok-1",
		UserID:  "1",
		Name:    "Test User",
		Email:   "test@example.com",
		SavedAt: time.Now(),
	}
	require.NoError(t, store.Save(ctx, id))

	loaded, err := store.Load(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "1", loaded.UserID)
	assert.Equal(t, "test@example.com", loaded.Email)

	require.NoError(t, store.Delete(ctx, "tok-1"))
	loaded, err = store.Load(ctx, "tok-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStoreSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, Identity{Token: "tok-1", UserID: "1"}))

	// New store over the same file sees the saved identity
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	loaded, err := reopened.Load(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "1", loaded.UserID)
}

func TestFileStoreDiscardsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err, "malformed persisted data is not fatal")

	loaded, err := store.Load(context.Background(), "anything")
	require.NoError(t, err)
	assert.Nil(t, loaded, "session simply remains empty")
}

func TestFileStoreUnknownToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	loaded, err := store.Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting an unknown token is not an error
	assert.NoError(t, store.Delete(context.Background(), "missing"))
}
