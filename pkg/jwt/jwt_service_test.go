package jwt

import (
	"Recipe-API/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, secret string, ttl time.Duration) JWTService {
	t.Helper()

	svc, err := NewJWTServiceWithSecret(secret, ttl)
	require.NoError(t, err)
	return svc
}

func TestJWTService(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		svc := newService(t, "secret", time.Hour)

		token := svc.GenerateTokenUser("42", domain.RoleUser)
		id, role, err := svc.GetUserIDByToken(token)
		require.NoError(t, err)
		assert.Equal(t, "42", id)
		assert.Equal(t, domain.RoleUser, role)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := newService(t, "secret", -time.Minute)

		_, _, err := svc.GetUserIDByToken(svc.GenerateTokenUser("42", domain.RoleUser))
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token := newService(t, "other", time.Hour).GenerateTokenUser("42", domain.RoleUser)

		_, _, err := newService(t, "secret", time.Hour).GetUserIDByToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("garbage", func(t *testing.T) {
		_, _, err := newService(t, "secret", time.Hour).GetUserIDByToken("not-a-jwt")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}

func TestEmptySecret(t *testing.T) {
	t.Run("explicit secret", func(t *testing.T) {
		svc, err := NewJWTServiceWithSecret("", time.Hour)
		assert.ErrorIs(t, err, ErrEmptySecret)
		assert.Nil(t, svc)
	})

	t.Run("from config", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		svc, err := NewJWTService()
		assert.ErrorIs(t, err, ErrEmptySecret)
		assert.Nil(t, svc)
	})
}
