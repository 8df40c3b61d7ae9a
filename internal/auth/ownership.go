package auth

import (
	"context"
	"errors"

	"passenger-service/internal/database"
)

// Guard enforces the ownership rule: an authenticated passenger may only
// address the resource whose id matches their own.
type Guard struct {
	store IdentityStore
}

// NewGuard creates an ownership guard backed by the given store
func NewGuard(store IdentityStore) *Guard {
	return &Guard{store: store}
}

// Authorize re-resolves the authenticated email to a live identity and
// compares its id against the path-addressed resource id. The id embedded
// in the claims is never trusted; claims are a snapshot from issuance time.
// Fails with ErrIdentityNotFound when the account no longer resolves and
// ErrOwnershipViolation on an id mismatch.
func (g *Guard) Authorize(ctx context.Context, email string, resourceID int64) (*database.Passenger, error) {
	passenger, err := g.store.GetByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrIdentityNotFound
	}
	if err != nil {
		return nil, err
	}

	if passenger.ID != resourceID {
		return nil, ErrOwnershipViolation
	}

	return passenger, nil
}
