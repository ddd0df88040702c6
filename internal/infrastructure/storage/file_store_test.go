package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bulkbuy/internal/application/session"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/infrastructure/storage"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

func TestFileStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")
	s := storage.NewFileStore(path)

	_, ok, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, ok, "archivo inexistente = sin claves")

	require.NoError(t, s.Set(ctx, map[string]string{"user": `{"_id":"u1"}`, "token": "tok"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// otra instancia sobre el mismo archivo (simula reinicio del proceso)
	reopened := storage.NewFileStore(path)
	v, ok, err := reopened.Get(ctx, "user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"_id":"u1"}`, v)

	require.NoError(t, reopened.Delete(ctx, "user", "token"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "sin claves el archivo se elimina")
}

func TestFileStore_ArchivoCorrupto(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user: [sin cerrar"), 0o600))
	s := storage.NewFileStore(path)

	_, _, err := s.Get(ctx, "user")
	assert.ErrorIs(t, err, domain.ErrCorruptSession)

	require.NoError(t, s.Delete(ctx, "user"))
	_, ok, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_SesionCorruptaSeLimpiaAlRestaurar(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user: [sin cerrar"), 0o600))

	s := session.NewStore(storage.NewFileStore(path), logger.Nop())
	require.NoError(t, s.Restore(ctx))
	assert.Equal(t, session.StatusReady, s.Snapshot().Status)
	assert.False(t, s.Snapshot().Authenticated())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
