package auth

import (
	"context"
	"testing"

	"passenger-service/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnershipMatch(t *testing.T) {
	store := newFakeStore()
	store.add(testPassenger(), "pw")
	guard := NewGuard(store)

	passenger, err := guard.Authorize(context.Background(), "john@example.com", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), passenger.ID)
}

func TestOwnershipMismatch(t *testing.T) {
	store := newFakeStore()
	store.add(testPassenger(), "pw")
	store.add(&database.Passenger{ID: 2, Name: "Jane", Age: 30, Email: "jane@example.com"}, "pw")
	guard := NewGuard(store)

	// Identity A addressing identity B's resource is forbidden for every
	// operation; the guard only sees the id
	passenger, err := guard.Authorize(context.Background(), "john@example.com", 2)
	assert.Nil(t, passenger)
	assert.ErrorIs(t, err, ErrOwnershipViolation)
}

func TestOwnershipAccountGone(t *testing.T) {
	store := newFakeStore()
	store.add(testPassenger(), "pw")
	guard := NewGuard(store)

	// A valid token whose account has since been deleted resolves to nothing
	store.remove("john@example.com")

	passenger, err := guard.Authorize(context.Background(), "john@example.com", 1)
	assert.Nil(t, passenger)
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestOwnershipIdempotent(t *testing.T) {
	store := newFakeStore()
	store.add(testPassenger(), "pw")
	guard := NewGuard(store)

	for i := 0; i < 5; i++ {
		passenger, err := guard.Authorize(context.Background(), "john@example.com", 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), passenger.ID)

		_, err = guard.Authorize(context.Background(), "john@example.com", 99)
		assert.ErrorIs(t, err, ErrOwnershipViolation)
	}
}

func TestOwnershipUsesLiveIdentity(t *testing.T) {
	store := newFakeStore()
	store.add(testPassenger(), "pw")
	guard := NewGuard(store)

	// The record's id changes server-side; the guard must follow the store,
	// not any snapshot the caller holds
	store.passengers["john@example.com"].ID = 7

	_, err := guard.Authorize(context.Background(), "john@example.com", 1)
	assert.ErrorIs(t, err, ErrOwnershipViolation)

	passenger, err := guard.Authorize(context.Background(), "john@example.com", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), passenger.ID)
}
