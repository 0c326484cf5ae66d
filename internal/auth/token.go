package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session-cookie token payload. The jti (RegisteredClaims.ID)
// is the session row id, so deleting the row revokes the cookie before it
// expires.
type Claims struct {
	Sub string `json:"sub"` // user id
	jwt.RegisteredClaims
}

func GenerateToken(secret, userID, sessionID string, ttl time.Duration) (string, error) {
	c := Claims{
		Sub: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

func ParseToken(secret, tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := t.Claims.(*Claims); ok && t.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
