package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestInspect_ReadsSubjectAndExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signedToken(t, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})

	info := Inspect(raw)
	require.True(t, info.Decodable)
	assert.Equal(t, "alice", info.Subject)
	assert.Equal(t, exp.Unix(), info.ExpiresAt.Unix())
	assert.False(t, info.Expired(time.Now()))
}

func TestInspect_ExpiredToken(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	info := Inspect(raw)
	require.True(t, info.Decodable)
	assert.True(t, info.Expired(time.Now()))
}

func TestInspect_OpaqueToken(t *testing.T) {
	info := Inspect("not-a-jwt")
	assert.False(t, info.Decodable)
	assert.Empty(t, info.Subject)
	assert.True(t, info.ExpiresAt.IsZero())
	assert.False(t, info.Expired(time.Now()))
}

func TestInspect_ClaimsWithoutSubjectOrExpiry(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"uid": 7})

	info := Inspect(raw)
	assert.True(t, info.Decodable)
	assert.Empty(t, info.Subject)
	assert.True(t, info.ExpiresAt.IsZero())
}
