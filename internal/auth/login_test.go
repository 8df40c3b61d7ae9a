package auth

import (
	"context"
	"testing"
	"time"

	"passenger-service/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory IdentityStore keyed by email
type fakeStore struct {
	passengers map[string]*database.Passenger
	passwords  map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		passengers: make(map[string]*database.Passenger),
		passwords:  make(map[string]string),
	}
}

func (f *fakeStore) add(passenger *database.Passenger, password string) {
	f.passengers[passenger.Email] = passenger
	f.passwords[passenger.Email] = password
}

func (f *fakeStore) remove(email string) {
	delete(f.passengers, email)
	delete(f.passwords, email)
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (*database.Passenger, error) {
	passenger, ok := f.passengers[email]
	if !ok {
		return nil, database.ErrNotFound
	}
	return passenger, nil
}

func (f *fakeStore) VerifyPassword(passenger *database.Passenger, password string) bool {
	return f.passwords[passenger.Email] == password
}

func TestLoginUnknownEmail(t *testing.T) {
	verifier := NewVerifier(newFakeStore(), NewCodec(testSecret, time.Hour))

	token, passenger, err := verifier.Login(context.Background(), "absent@example.com", "whatever")
	assert.Empty(t, token)
	assert.Nil(t, passenger)
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeStore()
	store.add(testPassenger(), "Asdfghjk1")
	verifier := NewVerifier(store, NewCodec(testSecret, time.Hour))

	token, passenger, err := verifier.Login(context.Background(), "john@example.com", "Asdfghjk11")
	assert.Empty(t, token)
	assert.Nil(t, passenger)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	store := newFakeStore()
	store.add(testPassenger(), "Asdfghjk1")
	codec := NewCodec(testSecret, time.Hour)
	verifier := NewVerifier(store, codec)

	token, passenger, err := verifier.Login(context.Background(), "john@example.com", "Asdfghjk1")
	require.NoError(t, err)
	require.NotNil(t, passenger)
	assert.Equal(t, int64(1), passenger.ID)

	// The issued token must decode back to the login identity
	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestLoginDoesNotMutateStore(t *testing.T) {
	store := newFakeStore()
	store.add(testPassenger(), "Asdfghjk1")
	verifier := NewVerifier(store, NewCodec(testSecret, time.Hour))

	_, _, _ = verifier.Login(context.Background(), "john@example.com", "wrong")
	_, _, err := verifier.Login(context.Background(), "john@example.com", "Asdfghjk1")
	assert.NoError(t, err)
	assert.Len(t, store.passengers, 1)
}
