// Package auth implements the stateless credentials used by the backend:
// signed JWT tokens carrying the subject's name, and bcrypt password digests.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/forgeapi/notes/internal/common"
)

// GenerateToken signs a compact HS256 token whose subject is the user's name
// and whose expiry is now + validityDuration.
func GenerateToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSubjectFromToken verifies the signature and expiry of tokenString and
// returns the embedded subject. Every failure mode (bad signature, malformed
// input, expired token) is reported uniformly as common.ErrInvalidToken so
// callers cannot distinguish tampering from expiry.
func GetSubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
