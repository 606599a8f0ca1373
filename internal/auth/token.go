package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the admin session cookie.
const CookieName = "booking_admin_session"

type Claims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// GenerateToken signs a cookie token carrying the session id. The token
// expiry mirrors the server-side session TTL.
func GenerateToken(secret, sessionID string, ttl time.Duration) (string, error) {
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken checks the signature and expiry and returns the session id.
func ValidateToken(secret, tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", jwt.ErrSignatureInvalid
	}
	return claims.SessionID, nil
}
