package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// LoginRequest represents authentication login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PassengerRequest represents passenger create/replace request
type PassengerRequest struct {
	Name     string `json:"name" binding:"required,alpha"`
	Age      int    `json:"age" binding:"required,gte=0"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// ReservationRequest represents reservation creation request
type ReservationRequest struct {
	ScheduledAt string `json:"scheduled_at" binding:"required"`
	Destination string `json:"destination" binding:"required"`
}

// FieldErrorsFromBinding converts gin binding errors into field error details
func FieldErrorsFromBinding(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Message: "failed validation on '" + fe.Tag() + "'",
		})
	}
	return details
}
