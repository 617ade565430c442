package jwtmw

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, expired, wrongly signed and subject-less tokens.
var ErrInvalidToken = errors.New("invalid token")

// Verifier validates tokens produced by the generator.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier creates a Verifier for the given HMAC secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}
}

// Verify checks the token and returns the user id bound to it.
func (v *Verifier) Verify(tokenStr string) (uint, error) {
	if len(v.secret) == 0 {
		return 0, errors.New("jwt secret is not configured")
	}
	claims := jwt.MapClaims{}
	token, err := v.parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	// JWT numbers are decoded as float64
	sub, ok := claims["sub"].(float64)
	if !ok || sub < 1 || sub != float64(uint(sub)) {
		return 0, ErrInvalidToken
	}
	return uint(sub), nil
}
