package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe_backend/internal/feature/auth/domain/entity"
	"recipe_backend/internal/feature/auth/usecase"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

// createTestSession creates a session entity for testing.
func createTestSession(id, userID string, expiresIn time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestNewSessionRedis(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.client, "client is nil")
	assert.Equal(t, "session", repo.prefix)
}

func TestSessionRedis_Create(t *testing.T) {
	tests := []struct {
		name    string
		session *entity.Session
		wantErr bool
	}{
		{
			name:    "success: create session",
			session: createTestSession("session-001", "user-001", 7*24*time.Hour),
			wantErr: false,
		},
		{
			name:    "failure: already expired session",
			session: createTestSession("expired-session", "user-001", -1*time.Hour),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mr := setupTestRedis(t)
			repo := NewSessionRedis(client, "session")

			err := repo.Create(context.Background(), tt.session)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			// The session key carries a TTL so Redis expires it natively
			assert.True(t, mr.Exists("session:"+tt.session.ID))
			assert.Greater(t, mr.TTL("session:"+tt.session.ID), time.Duration(0))
		})
	}
}

func TestSessionRedis_FindByID(t *testing.T) {
	t.Run("find stored session", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		session := createTestSession("session-001", "user-001", time.Hour)
		require.NoError(t, repo.Create(context.Background(), session))

		found, err := repo.FindByID(context.Background(), "session-001")

		require.NoError(t, err)
		assert.Equal(t, session.ID, found.ID)
		assert.Equal(t, session.UserID, found.UserID)
		assert.Equal(t, session.UserAgent, found.UserAgent)
		assert.Equal(t, session.IPAddress, found.IPAddress)
	})

	t.Run("missing session", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		_, err := repo.FindByID(context.Background(), "missing")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})

	t.Run("session expired via Redis TTL", func(t *testing.T) {
		client, mr := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		session := createTestSession("session-001", "user-001", time.Minute)
		require.NoError(t, repo.Create(context.Background(), session))

		// Advance miniredis past the TTL
		mr.FastForward(2 * time.Minute)

		_, err := repo.FindByID(context.Background(), "session-001")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}

func TestSessionRedis_Delete(t *testing.T) {
	t.Run("delete removes the session", func(t *testing.T) {
		client, mr := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		session := createTestSession("session-001", "user-001", time.Hour)
		require.NoError(t, repo.Create(context.Background(), session))

		err := repo.Delete(context.Background(), "session-001")

		require.NoError(t, err)
		assert.False(t, mr.Exists("session:session-001"))
	})

	t.Run("delete missing session", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		err := repo.Delete(context.Background(), "missing")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}
