//go:build unit

package user_test

import (
	"strings"
	"testing"

	"tourease/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsername(t *testing.T) {
	t.Run("lowercases and trims", func(t *testing.T) {
		u, err := user.NewUsername("  Asha.Rao  ")
		require.NoError(t, err)
		assert.Equal(t, "asha.rao", u.String())
	})

	t.Run("valid characters", func(t *testing.T) {
		for _, s := range []string{"abc", "a_b-c.d", "user123", strings.Repeat("a", 30)} {
			_, err := user.NewUsername(s)
			assert.NoError(t, err, "username=%q", s)
		}
	})

	t.Run("invalid usernames", func(t *testing.T) {
		for _, s := range []string{"", "ab", strings.Repeat("a", 31), "has space", "bad@char", "émile"} {
			_, err := user.NewUsername(s)
			assert.ErrorIs(t, err, user.ErrInvalidUsername, "username=%q", s)
		}
	})
}

func TestNewDisplayName(t *testing.T) {
	d, err := user.NewDisplayName("  Asha Rao  ")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", d.String())

	_, err = user.NewDisplayName("   ")
	require.ErrorIs(t, err, user.ErrInvalidDisplayName)
}

func TestNewRole(t *testing.T) {
	for _, s := range []string{"guest", "host", "admin"} {
		r, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, r.String())
	}

	_, err := user.NewRole("owner")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}
