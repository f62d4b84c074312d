package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"hospital-dashboard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_EmptyStorage(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryStorage(), nil)

	assert.Equal(t, "", s.Token(ctx))
	assert.Nil(t, s.User(ctx))
	assert.False(t, s.IsAuthenticated(ctx))
}

func TestSession_SaveAndClear(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	s := New(storage, nil)

	user := &entity.User{ID: "u1", Username: "admin", Role: entity.RoleAdmin}
	require.NoError(t, s.Save(ctx, "tok", user))

	for _, key := range []string{TokenKey, LegacyTokenKey} {
		v, ok, err := storage.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "tok", v)
	}
	assert.True(t, s.IsAuthenticated(ctx))
	assert.Equal(t, user, s.User(ctx))

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))
	assert.False(t, s.IsAuthenticated(ctx))
	assert.Nil(t, s.User(ctx))
}

func TestSession_LegacyKeyAloneAuthenticates(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, LegacyTokenKey, "old"))

	s := New(storage, nil)
	assert.True(t, s.IsAuthenticated(ctx))
	assert.Equal(t, "old", s.Token(ctx))
}

func TestSession_CorruptUser(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, UserKey, "{not json"))

	s := New(storage, nil)
	assert.Nil(t, s.User(ctx))
}

func TestFileStorage_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	first := New(NewFileStorage(path), nil)
	require.NoError(t, first.Save(ctx, "tok", &entity.User{ID: "1", Username: "drSmith", Role: entity.RoleDoctor}))

	second := New(NewFileStorage(path), nil)
	assert.Equal(t, "tok", second.Token(ctx))
	require.NotNil(t, second.User(ctx))
	assert.Equal(t, entity.RoleDoctor, second.User(ctx).Role)

	require.NoError(t, second.Clear(ctx))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, second.Clear(ctx))
}
