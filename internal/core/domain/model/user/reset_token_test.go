package user_test

import (
	"testing"
	"time"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResetToken(t *testing.T) {
	createdAt := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := createdAt.Add(time.Hour)

	t.Run("should create unused token", func(t *testing.T) {
		token, err := user.NewResetToken(
			kernel.NewUUID(), kernel.NewUUID(), "opaque-token", expiresAt, createdAt)

		require.NoError(t, err)
		require.NoError(t, token.Validate())
		assert.False(t, token.IsUsed())
		assert.Equal(t, "opaque-token", token.Token())
		assert.Equal(t, expiresAt, token.ExpiresAt())
	})

	t.Run("should fail with missing fields", func(t *testing.T) {
		_, err := user.NewResetToken(kernel.NewUUID(), kernel.UUID{}, "opaque-token", expiresAt, createdAt)
		require.Error(t, err)

		_, err = user.NewResetToken(kernel.NewUUID(), kernel.NewUUID(), "", expiresAt, createdAt)
		require.Error(t, err)

		_, err = user.NewResetToken(kernel.NewUUID(), kernel.NewUUID(), "opaque-token", time.Time{}, createdAt)
		require.Error(t, err)
	})
}

func TestResetToken_IsExpired(t *testing.T) {
	createdAt := time.Now()
	expiresAt := createdAt.Add(time.Hour)

	token, err := user.NewResetToken(
		kernel.NewUUID(), kernel.NewUUID(), "opaque-token", expiresAt, createdAt)
	require.NoError(t, err)

	assert.False(t, token.IsExpired(createdAt))
	assert.False(t, token.IsExpired(expiresAt.Add(-time.Second)))
	assert.True(t, token.IsExpired(expiresAt))
	assert.True(t, token.IsExpired(expiresAt.Add(time.Minute)))
}

func TestResetToken_MarkUsed(t *testing.T) {
	token, err := user.NewResetToken(
		kernel.NewUUID(), kernel.NewUUID(), "opaque-token",
		time.Now().Add(time.Hour), time.Now())
	require.NoError(t, err)

	t.Run("should redeem an unused token", func(t *testing.T) {
		require.NoError(t, token.MarkUsed())
		assert.True(t, token.IsUsed())
	})

	t.Run("should reject double redemption", func(t *testing.T) {
		require.Error(t, token.MarkUsed())
	})
}
