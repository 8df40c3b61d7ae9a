package models

import "time"

// BaseResponse is the envelope returned by every endpoint
type BaseResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
	Detail    interface{} `json:"detail,omitempty"`
}

// NewSuccessResponse builds a success envelope around the given payload
func NewSuccessResponse(data interface{}) BaseResponse {
	return BaseResponse{
		Success:   true,
		Message:   "Operation successful",
		Timestamp: time.Now().Format(time.RFC3339),
		Data:      data,
	}
}

// NewErrorResponse builds a failure envelope with the given message
func NewErrorResponse(message string) BaseResponse {
	return BaseResponse{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// FieldError describes a single request-body validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationErrorResponse builds a failure envelope carrying field errors
func NewValidationErrorResponse(details []FieldError) BaseResponse {
	return BaseResponse{
		Success:   false,
		Message:   "Error validating request body",
		Timestamp: time.Now().Format(time.RFC3339),
		Detail:    details,
	}
}

// TokenData is the login response payload
type TokenData struct {
	Token string `json:"token"`
}

// PassengerTokenData is the create/update response payload: the persisted
// passenger plus a token snapshotting the new claims
type PassengerTokenData struct {
	Passenger interface{} `json:"passenger"`
	Token     string      `json:"token"`
}
