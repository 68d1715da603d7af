package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rpupo63/portfolio-backend/errs"
)

// TokenTTL is how long an issued admin token stays valid. There is no
// refresh mechanism; the operator logs in again.
const TokenTTL = 24 * time.Hour

// AdminRole is the only role the system issues.
const AdminRole = "admin"

// Claims is the payload carried by an admin bearer token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the signed admin tokens. The signing
// secret comes from configuration and never appears in source.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: TokenTTL}
}

// Issue signs a token for the admin user. Returns the compact token and its
// lifetime in seconds.
func (m *TokenManager) Issue(username string) (string, int64, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		Role:     AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", 0, err
	}
	return signed, int64(m.ttl.Seconds()), nil
}

// Verify parses and validates a compact token, returning its claims.
// Expired, unsigned or foreign-algorithm tokens all fail.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.NewExpiredTokenError()
		}
		return nil, errs.NewInvalidTokenError(err)
	}
	if !token.Valid || claims.Role != AdminRole {
		return nil, errs.NewInvalidTokenError(nil)
	}
	return claims, nil
}
