package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// JWTManager issues and validates signed session tokens.
type JWTManager struct {
	Secret     []byte
	SessionTTL time.Duration
}

var defaultManager *JWTManager

func NewJWTManager(secret string, sessionTTL time.Duration) *JWTManager {
	m := &JWTManager{
		Secret:     []byte(secret),
		SessionTTL: sessionTTL,
	}
	defaultManager = m
	return m
}

// DefaultJWT returns the last constructed JWTManager (used for auto-wiring routes)
func DefaultJWT() *JWTManager { return defaultManager }

// SessionClaims is what a session token carries: enough to authorize account
// and user scoped requests without a store lookup.
type SessionClaims struct {
	UserID    string `json:"uid"`
	Email     string `json:"email"`
	AccountID string `json:"aid"`
	jwt.RegisteredClaims
}

func (m *JWTManager) GenerateSessionToken(userID, email, accountID string) (string, time.Time, error) {
	exp := time.Now().Add(m.SessionTTL)
	claims := &SessionClaims{
		UserID:    userID,
		Email:     email,
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

func (m *JWTManager) ParseSessionToken(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
