package service

import (
	"testing"

	dmn "github.com/beka-birhanu/vinom-planner/domain"
	"github.com/beka-birhanu/vinom-planner/infrastruture/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "Tr1cky-Lantern-Orbit-42"

func TestAuth(t *testing.T) {
	users := newMemoryUserRepo()
	tokenizer := token.NewJwtService("test-secret", "vinom-planner")
	auth, err := NewAuthService(users, tokenizer)
	require.NoError(t, err)

	require.NoError(t, auth.Register("walker", testPassword))

	t.Run("duplicate username", func(t *testing.T) {
		assert.ErrorIs(t, auth.Register("walker", testPassword), ErrUsernameTaken)
	})

	t.Run("invalid registration", func(t *testing.T) {
		assert.ErrorIs(t, auth.Register("w", testPassword), dmn.ErrUsernameTooShort)
		assert.ErrorIs(t, auth.Register("runner", "12345"), dmn.ErrWeakPassword)
	})

	t.Run("sign in issues a token with the user id", func(t *testing.T) {
		user, signed, err := auth.SignIn("walker", testPassword)
		require.NoError(t, err)
		assert.Equal(t, "walker", user.Username)

		claims, err := tokenizer.Decode(signed)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims["userID"])
		assert.Equal(t, "walker", claims["username"])
	})

	t.Run("bad credentials", func(t *testing.T) {
		_, _, err := auth.SignIn("walker", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = auth.SignIn("nobody", testPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestNewAuthServiceRequiresDependencies(t *testing.T) {
	_, err := NewAuthService(nil, token.NewJwtService("s", "i"))
	assert.ErrorIs(t, err, ErrMissingDependency)
}
