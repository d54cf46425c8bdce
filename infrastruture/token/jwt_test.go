package token

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSecret(t *testing.T) string {
	t.Helper()
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	require.NoError(t, err)
	return base64.URLEncoding.EncodeToString(bytes)
}

func TestJwtService(t *testing.T) {
	secretKey := randomSecret(t)
	svc := NewJwtService(secretKey, "vinom-planner")

	t.Run("Generate and Decode carries user claims", func(t *testing.T) {
		claims := map[string]interface{}{
			"userID":   "6f1c2b7e-0f7d-4a53-9a8e-2f5a4b8c9d10",
			"username": "walker",
		}

		token, err := svc.Generate(claims, 5*time.Minute)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		decoded, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "6f1c2b7e-0f7d-4a53-9a8e-2f5a4b8c9d10", decoded["userID"])
		assert.Equal(t, "walker", decoded["username"])
		assert.Equal(t, "vinom-planner", decoded["iss"])
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		_, err := svc.Decode("invalidTokenString")
		assert.Error(t, err)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{"userID": "x"}, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Decode rejects another issuer", func(t *testing.T) {
		other := NewJwtService(secretKey, "someone-else")
		token, err := other.Generate(map[string]interface{}{"userID": "x"}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrUnexpectedIssuer)
	})

	t.Run("Decode rejects another secret", func(t *testing.T) {
		other := NewJwtService(randomSecret(t), "vinom-planner")
		token, err := other.Generate(map[string]interface{}{"userID": "x"}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})
}
