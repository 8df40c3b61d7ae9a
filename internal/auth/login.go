package auth

import (
	"context"
	"errors"

	"passenger-service/internal/database"
)

// IdentityStore resolves passenger identities and verifies stored credentials.
// Lookups return database.ErrNotFound when no identity matches.
type IdentityStore interface {
	GetByEmail(ctx context.Context, email string) (*database.Passenger, error)
	VerifyPassword(passenger *database.Passenger, password string) bool
}

// Verifier checks login credentials and issues tokens for verified identities
type Verifier struct {
	store IdentityStore
	codec *Codec
}

// NewVerifier creates a login verifier backed by the given store and codec
func NewVerifier(store IdentityStore, codec *Codec) *Verifier {
	return &Verifier{store: store, codec: codec}
}

// Login resolves the email, verifies the password and issues a token.
// Fails with ErrIdentityNotFound for an unknown email and
// ErrInvalidCredentials for a password mismatch.
func (v *Verifier) Login(ctx context.Context, email, password string) (string, *database.Passenger, error) {
	passenger, err := v.store.GetByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return "", nil, ErrIdentityNotFound
	}
	if err != nil {
		return "", nil, err
	}

	if !v.store.VerifyPassword(passenger, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := v.codec.Encode(passenger)
	if err != nil {
		return "", nil, err
	}

	return token, passenger, nil
}
