package auth

import (
	"errors"
	"time"

	"passenger-service/internal/database"

	"github.com/golang-jwt/jwt/v5"
)

// PassengerClaims is the identity snapshot embedded in a token at issuance.
// Claims are not refreshed until a new token is issued, so consumers must
// re-resolve the identity by email before trusting anything beyond it.
type PassengerClaims struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Codec encodes and decodes signed, time-bounded passenger tokens.
// The signing key and expiry policy are fixed at construction; a Codec is
// safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a token codec with the given signing key and token lifetime
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Encode issues a signed token carrying a snapshot of the passenger's claims
func (c *Codec) Encode(passenger *database.Passenger) (string, error) {
	now := time.Now()
	claims := PassengerClaims{
		Name:  passenger.Name,
		Age:   passenger.Age,
		Email: passenger.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies a token string and returns the embedded claims.
// Failures map to exactly one of ErrTokenMalformed, ErrSignatureInvalid
// or ErrTokenExpired.
func (c *Codec) Decode(tokenString string) (*PassengerClaims, error) {
	claims := &PassengerClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrSignatureInvalid
		}
		return c.secret, nil
	})

	switch {
	case err == nil && token.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, ErrSignatureInvalid):
		return nil, ErrSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	default:
		return nil, ErrTokenMalformed
	}
}
