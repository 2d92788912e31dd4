package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(lifetime time.Duration) *SessionService {
	return NewSessionService(SessionConfig{
		SecretKey: "test-secret",
		Lifetime:  lifetime,
		Issuer:    "yatube.test",
	})
}

func TestSessionRoundTrip(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	token, err := svc.Issue(42, "leo")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "leo", claims.Username)
	assert.Equal(t, "yatube.test", claims.Issuer)
}

func TestSessionExpired(t *testing.T) {
	svc := newTestSessionService(-time.Minute)

	token, err := svc.Issue(42, "leo")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionWrongSecret(t *testing.T) {
	svc := newTestSessionService(time.Hour)
	token, err := svc.Issue(42, "leo")
	require.NoError(t, err)

	other := NewSessionService(SessionConfig{
		SecretKey: "another-secret",
		Lifetime:  time.Hour,
		Issuer:    "yatube.test",
	})
	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestSessionGarbageToken(t *testing.T) {
	svc := newTestSessionService(time.Hour)
	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)
}
