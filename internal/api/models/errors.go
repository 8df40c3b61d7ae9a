package models

import (
	"errors"
	"net/http"

	"passenger-service/internal/auth"
)

// Error codes
const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeForbidden      = "FORBIDDEN"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeInternalError  = "INTERNAL_ERROR"

	// Authentication errors
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeTokenExpired       = "TOKEN_EXPIRED"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
)

// User-visible messages, kept identical across every endpoint that can
// produce the failure.
const (
	MsgPassengerNotFound     = "passenger not found"
	MsgInvalidPassword       = "Invalid password"
	MsgForbiddenResource     = "passenger logged in does not have access to this resource"
	MsgAuthenticationFailed  = "Invalid or missing authorization token"
	MsgTokenGenerationFailed = "Possible error generating token"
)

// StatusForAuthError is the single mapping table from auth subsystem
// failures to HTTP outcomes:
//
//	IdentityNotFound    -> 404 (login with unknown email, or valid token for a deleted account)
//	InvalidCredentials  -> 401 (login password mismatch)
//	OwnershipViolation  -> 403 (authenticated, addressing someone else's resource)
//	any decode failure  -> 403 (missing, malformed, forged or expired token)
//	anything else       -> 500
func StatusForAuthError(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrIdentityNotFound):
		return http.StatusNotFound, MsgPassengerNotFound
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, MsgInvalidPassword
	case errors.Is(err, auth.ErrOwnershipViolation):
		return http.StatusForbidden, MsgForbiddenResource
	case errors.Is(err, auth.ErrTokenMalformed),
		errors.Is(err, auth.ErrSignatureInvalid),
		errors.Is(err, auth.ErrTokenExpired):
		return http.StatusForbidden, MsgAuthenticationFailed
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
