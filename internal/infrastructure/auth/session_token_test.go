package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pickleworks/backend/internal/infrastructure/config"
)

func newTestService(ttl time.Duration) *SessionTokenService {
	return NewSessionTokenService(config.SessionConfig{
		Secret: "test-secret-that-is-long-enough-0123",
		TTL:    ttl,
	}, "pickleworks")
}

func TestIssueAndValidate(t *testing.T) {
	svc := newTestService(time.Hour)

	sessionID, token, expiresAt, err := svc.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	_, err = uuid.Parse(sessionID)
	assert.NoError(t, err, "session id should be a uuid")

	got, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestIssueForRoundTrips(t *testing.T) {
	svc := newTestService(time.Hour)

	token, _, err := svc.IssueFor("existing-session")
	require.NoError(t, err)

	got, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "existing-session", got)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newTestService(time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.IssueFor("stale-session")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewSessionTokenService(config.SessionConfig{
		Secret: "a-completely-different-signing-secret",
		TTL:    time.Hour,
	}, "pickleworks")

	token, _, err := other.IssueFor("session")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsUnsignedToken(t *testing.T) {
	svc := newTestService(time.Hour)

	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "session",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		SessionID: "session",
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsMissingSessionID(t *testing.T) {
	svc := newTestService(time.Hour)

	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-that-is-long-enough-0123"))
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.ErrorIs(t, err, ErrMissingSessionID)
}
