package session

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpiry decodes the expiry claim from the backend-issued JWT without
// verifying the signature (the client has no key and only displays it).
func TokenExpiry(token string) (time.Time, bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
