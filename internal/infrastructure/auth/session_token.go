// Package auth signs and verifies the session tokens carried in the
// shop's session cookie. The token is an HS256 JWT whose subject is
// the session id; everything else about the session lives server-side.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pickleworks/backend/internal/infrastructure/config"
)

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidClaims    = errors.New("invalid token claims")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrMissingSessionID = errors.New("missing session id in claims")
)

// SessionClaims are the claims embedded in a session token
type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// SessionTokenService issues and validates signed session tokens
type SessionTokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewSessionTokenService creates a token service from the session config
func NewSessionTokenService(cfg config.SessionConfig, issuer string) *SessionTokenService {
	return &SessionTokenService{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		issuer: issuer,
	}
}

// Issue creates a signed token for a fresh session id. The returned
// session id is what the rest of the system keys session state on.
func (s *SessionTokenService) Issue() (sessionID, token string, expiresAt time.Time, err error) {
	sessionID = uuid.New().String()
	token, expiresAt, err = s.IssueFor(sessionID)
	return sessionID, token, expiresAt, err
}

// IssueFor creates a signed token for an existing session id
func (s *SessionTokenService) IssueFor(sessionID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		SessionID: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate verifies a token and returns the session id it carries
func (s *SessionTokenService) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return "", ErrTokenNotYetValid
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidClaims
	}
	if claims.SessionID == "" {
		return "", ErrMissingSessionID
	}
	return claims.SessionID, nil
}

// TTL returns the token lifetime, used when setting cookie max-age
func (s *SessionTokenService) TTL() time.Duration {
	return s.ttl
}
