package user_test

import (
	"testing"
	"time"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	createdAt := time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)

	t.Run("should create active user", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "jdoe", "jdoe@example.com", "hashed", kernel.ProjectOffice, createdAt)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, id, u.ID())
		assert.Equal(t, "jdoe", u.Username())
		assert.Equal(t, "jdoe@example.com", u.Email())
		assert.Equal(t, "hashed", u.PasswordHash())
		assert.Equal(t, kernel.ProjectOffice, u.Department())
		assert.True(t, u.IsActive())
	})

	t.Run("should fail with invalid parameters", func(t *testing.T) {
		testCases := []struct {
			name string
			make func() (*user.User, error)
		}{
			{"empty id", func() (*user.User, error) {
				return user.NewUser(kernel.UUID{}, "jdoe", "jdoe@example.com", "hashed", kernel.ProjectOffice, createdAt)
			}},
			{"blank username", func() (*user.User, error) {
				return user.NewUser(kernel.NewUUID(), "  ", "jdoe@example.com", "hashed", kernel.ProjectOffice, createdAt)
			}},
			{"blank email", func() (*user.User, error) {
				return user.NewUser(kernel.NewUUID(), "jdoe", "", "hashed", kernel.ProjectOffice, createdAt)
			}},
			{"malformed email", func() (*user.User, error) {
				return user.NewUser(kernel.NewUUID(), "jdoe", "not-an-email", "hashed", kernel.ProjectOffice, createdAt)
			}},
			{"empty password hash", func() (*user.User, error) {
				return user.NewUser(kernel.NewUUID(), "jdoe", "jdoe@example.com", "", kernel.ProjectOffice, createdAt)
			}},
			{"unknown department", func() (*user.User, error) {
				return user.NewUser(kernel.NewUUID(), "jdoe", "jdoe@example.com", "hashed", kernel.DepartmentUnknown, createdAt)
			}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.make()
				require.Error(t, err)
			})
		}
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("should restore deactivated user", func(t *testing.T) {
		u, err := user.RestoreUser(
			kernel.NewUUID(), "jdoe", "jdoe@example.com", "hashed",
			kernel.AreaOffice, false, time.Now())

		require.NoError(t, err)
		assert.False(t, u.IsActive())
	})
}

func TestUser_StatusTransitions(t *testing.T) {
	u, err := user.NewUser(
		kernel.NewUUID(), "jdoe", "jdoe@example.com", "hashed",
		kernel.RoadSale, time.Now())
	require.NoError(t, err)

	u.Deactivate()
	assert.False(t, u.IsActive())

	u.Activate()
	assert.True(t, u.IsActive())
}

func TestUser_ChangePassword(t *testing.T) {
	u, err := user.NewUser(
		kernel.NewUUID(), "jdoe", "jdoe@example.com", "hashed",
		kernel.RoadSale, time.Now())
	require.NoError(t, err)

	t.Run("should replace the hash", func(t *testing.T) {
		require.NoError(t, u.ChangePassword("rehashed"))
		assert.Equal(t, "rehashed", u.PasswordHash())
	})

	t.Run("should reject empty hash", func(t *testing.T) {
		require.Error(t, u.ChangePassword(""))
		assert.Equal(t, "rehashed", u.PasswordHash())
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("should fail for zero value user", func(t *testing.T) {
		var u user.User

		err := u.Validate()

		require.Error(t, err)
		assert.Equal(t, user.ErrUserIsNotConstructed, err)
	})
}
