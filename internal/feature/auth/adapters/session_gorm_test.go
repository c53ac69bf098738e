package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe_backend/internal/feature/auth/domain/entity"
	"cafe_backend/internal/feature/auth/usecase"
)

func newTestSession(id string, expiresIn time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		UserID:    1,
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestSessionGorm_CreateAndFind(t *testing.T) {
	repo := NewSessionGorm(setupTestDB(t))

	session := newTestSession("sid-1", time.Hour)
	require.NoError(t, repo.Create(context.Background(), session))

	found, err := repo.FindByID(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Equal(t, session.UserID, found.UserID)
	assert.Equal(t, session.UserAgent, found.UserAgent)
	assert.Nil(t, found.RevokedAt)
	assert.True(t, found.IsValid())
}

func TestSessionGorm_FindByID_Missing(t *testing.T) {
	repo := NewSessionGorm(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), "sid-unknown")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
}

func TestSessionGorm_Revoke(t *testing.T) {
	t.Run("marks the session revoked", func(t *testing.T) {
		repo := NewSessionGorm(setupTestDB(t))
		require.NoError(t, repo.Create(context.Background(), newTestSession("sid-1", time.Hour)))

		require.NoError(t, repo.Revoke(context.Background(), "sid-1"))

		found, err := repo.FindByID(context.Background(), "sid-1")
		require.NoError(t, err)
		assert.True(t, found.IsRevoked())
		assert.False(t, found.IsValid())
	})

	t.Run("missing session", func(t *testing.T) {
		repo := NewSessionGorm(setupTestDB(t))
		err := repo.Revoke(context.Background(), "sid-unknown")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}

func TestSessionGorm_DeleteExpired(t *testing.T) {
	repo := NewSessionGorm(setupTestDB(t))

	require.NoError(t, repo.Create(context.Background(), newTestSession("sid-live", time.Hour)))
	require.NoError(t, repo.Create(context.Background(), newTestSession("sid-old-1", -time.Hour)))
	require.NoError(t, repo.Create(context.Background(), newTestSession("sid-old-2", -time.Minute)))

	deleted, err := repo.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = repo.FindByID(context.Background(), "sid-live")
	assert.NoError(t, err, "live session must survive the sweep")
	_, err = repo.FindByID(context.Background(), "sid-old-1")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
}
