package auth

import (
	"testing"
	"time"

	"passenger-service/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-key-for-unit-tests"

func testPassenger() *database.Passenger {
	return &database.Passenger{
		ID:    1,
		Name:  "John",
		Age:   25,
		Email: "john@example.com",
	}
}

func TestCodecRoundtrip(t *testing.T) {
	codec := NewCodec(testSecret, time.Hour)

	token, err := codec.Encode(testPassenger())
	require.NoError(t, err, "Failed to encode token")
	require.NotEmpty(t, token)

	claims, err := codec.Decode(token)
	require.NoError(t, err, "Failed to decode freshly issued token")

	assert.Equal(t, "john@example.com", claims.Email)
	assert.Equal(t, "John", claims.Name)
	assert.Equal(t, 25, claims.Age)
	assert.NotNil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestCodecExpiry(t *testing.T) {
	codec := NewCodec(testSecret, -time.Minute)

	token, err := codec.Encode(testPassenger())
	require.NoError(t, err)

	claims, err := codec.Decode(token)
	assert.Nil(t, claims)
	// An expired but correctly signed token must report expiry, never a
	// signature problem
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrSignatureInvalid)
}

func TestCodecWrongKey(t *testing.T) {
	issuer := NewCodec(testSecret, time.Hour)
	verifier := NewCodec("a-different-signing-key", time.Hour)

	token, err := issuer.Encode(testPassenger())
	require.NoError(t, err)

	claims, err := verifier.Decode(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestCodecMalformed(t *testing.T) {
	codec := NewCodec(testSecret, time.Hour)

	for _, tokenString := range []string{
		"",
		"garbage",
		"a.b",
		"not.a.token",
	} {
		claims, err := codec.Decode(tokenString)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", tokenString)
	}
}

func TestCodecClaimsAreSnapshot(t *testing.T) {
	codec := NewCodec(testSecret, time.Hour)

	passenger := testPassenger()
	token, err := codec.Encode(passenger)
	require.NoError(t, err)

	// Mutating the record after issuance must not affect the token
	passenger.Email = "changed@example.com"

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", claims.Email)
}
