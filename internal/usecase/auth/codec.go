// Package auth implements credential verification: broker bearer tokens,
// self-issued bridge tokens, and the CAS ticket exchange.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Codec encodes and decodes compact HMAC-SHA256 signed tokens. Decode checks
// the signature only; audience, expiry, and issuer rules are layered on by
// callers because different token kinds apply different subsets of them.
type Codec struct {
	secret []byte
}

// NewCodec -.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode serializes the claims and signs them. Deterministic for identical
// claims and secret.
func (c *Codec) Encode(claims jwt.MapClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies the signature over the payload and returns the raw claims.
func (c *Codec) Decode(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})

	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrInvalidSignature
	case err != nil:
		return nil, ErrMalformedToken
	case !token.Valid:
		return nil, ErrInvalidSignature
	}

	return claims, nil
}
