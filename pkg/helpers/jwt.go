package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager signs and parses the stateless auth tokens handed out after a
// successful login. One process-wide secret, injected from config.
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
}

var defaultManager *JWTManager

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	m := &JWTManager{Secret: []byte(secret), TTL: ttl}
	defaultManager = m
	return m
}

// DefaultJWT returns the last constructed JWTManager (used for auto-wiring routes)
func DefaultJWT() *JWTManager { return defaultManager }

// IdentityClaims are the claims asserted by an auth token.
type IdentityClaims struct {
	UserID      string `json:"uid"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	IsValidated bool   `json:"is_validated"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed token carrying the user's identity claims.
func (m *JWTManager) GenerateToken(userID, username, email string, isValidated bool) (string, time.Time, error) {
	exp := time.Now().Add(m.TTL)
	claims := &IdentityClaims{
		UserID:      userID,
		Username:    username,
		Email:       email,
		IsValidated: isValidated,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// ParseToken verifies the signature and returns the embedded claims.
func (m *JWTManager) ParseToken(tokenStr string) (*IdentityClaims, error) {
	claims := &IdentityClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
