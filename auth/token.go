package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/joaogpereira/UniDrive/domain"
)

// jwtKey signs session tokens.
// In a production environment this should come from an environment variable
// or a secret manager.
var jwtKey = []byte("unidrive_session_signing_key_2026")

// SessionClaims carries the identity triple inside the JWT so the chat core
// can classify messages without another lookup.
type SessionClaims struct {
	UserID      string      `json:"user_id"`
	DisplayName string      `json:"display_name"`
	Role        domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session token for a user.
func GenerateToken(identity domain.Identity, duration time.Duration) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID:      identity.ID,
		DisplayName: identity.DisplayName,
		Role:        identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "unidrive",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ValidateToken checks signature and expiry and returns the embedded identity.
func ValidateToken(tokenString string) (domain.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return domain.Identity{}, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, jwt.ErrSignatureInvalid
	}
	return domain.Identity{
		ID:          claims.UserID,
		DisplayName: claims.DisplayName,
		Role:        claims.Role,
	}, nil
}
