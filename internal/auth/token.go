package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/semexe/backend/domain"
)

// DefaultTokenTTL matches the fixed 7-day validity window handed to clients.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Token verification outcomes. Expiry is reported separately so the gate can
// tell the user to log in again instead of returning a generic failure.
var (
	ErrTokenExpired = domain.NewError(domain.ErrCodeUnauthorized, "session expired, please log in again")
	ErrTokenInvalid = domain.NewError(domain.ErrCodeUnauthorized, "invalid token")
)

// Claims is the signed token payload: the user identity plus the validity
// window carried by the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// IssueToken signs a claim for the given user with an HS256 MAC. The issued-at
// and expires-at timestamps are stamped here from the provided ttl; callers
// pick the window (DefaultTokenTTL in production).
func IssueToken(userID int64, email string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Email:  email,
	})
	return token.SignedString(secret)
}

// ParseToken verifies the signature and validity window and returns the
// embedded claims. Failures collapse to ErrTokenExpired or ErrTokenInvalid.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
