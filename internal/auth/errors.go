package auth

import "errors"

// Token decode failures. Distinct so the transport layer can log what was
// rejected even though they all surface as the same unauthenticated outcome.
var (
	ErrTokenMalformed   = errors.New("token is malformed")
	ErrSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired     = errors.New("token has expired")
)

// Login and authorization failures.
var (
	ErrIdentityNotFound   = errors.New("passenger identity not found")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrOwnershipViolation = errors.New("passenger does not own the addressed resource")
)
