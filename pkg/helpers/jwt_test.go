package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, exp, err := m.GenerateSessionToken("u-1", "mario@example.com", "a-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "mario@example.com", claims.Email)
	assert.Equal(t, "a-1", claims.AccountID)
}

func TestSessionTokenExpired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)

	token, _, err := m.GenerateSessionToken("u-1", "mario@example.com", "a-1")
	require.NoError(t, err)

	_, err = m.ParseSessionToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	token, _, err := m.GenerateSessionToken("u-1", "mario@example.com", "a-1")
	require.NoError(t, err)

	other := &JWTManager{Secret: []byte("different"), SessionTTL: time.Hour}
	_, err = other.ParseSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenGarbage(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	_, err := m.ParseSessionToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
