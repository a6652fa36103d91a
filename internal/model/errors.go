package model

import (
	"errors"
	"fmt"
)

// APIError is the error shape services hand to the view layer: an HTTP-ish
// code plus a human-readable message.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage = "internal server error"
	ErrSessionExpiredMessage = "session expired, please log in again"

	ErrInvalidCPFMessage       = "invalid CPF"
	ErrPasswordTooShortMessage = "password must have at least 8 characters"

	ErrTitleRequiredMessage     = "order title is required"
	ErrRecipientRequiredMessage = "recipient is required"
	ErrOrderNotFoundMessage     = "order not found"
	ErrUnknownOrderStatusMessage = "unknown order status"

	ErrFullNameRequiredMessage     = "full name is required"
	ErrInvalidEmailMessage         = "invalid email address"
	ErrStateRequiredMessage        = "state is required"
	ErrCityRequiredMessage         = "city is required"
	ErrNeighborhoodRequiredMessage = "neighborhood is required"
	ErrAddressRequiredMessage      = "address is required"
	ErrInvalidZipcodeMessage       = "zipcode must be exactly 8 digits"

	// Fallbacks shown when the server rejects a request without a
	// usable message, mirroring the original toasts.
	ErrLoginFallbackMessage  = "an unexpected error occurred while logging in, please try again"
	ErrPickUpFallbackMessage = "an unexpected error occurred while picking up the package, please try again"
)

// UpstreamErrCodeUnauthorized is the body code the FastFeet API sends
// alongside HTTP 401 when the session is gone.
const UpstreamErrCodeUnauthorized = "UNAUTHORIZED"

var ErrSessionExpired = errors.New(ErrSessionExpiredMessage)

// UpstreamError is a rejection decoded from the FastFeet API error body
// {code, details}.
type UpstreamError struct {
	Status  int
	Code    string
	Details string
}

func (e *UpstreamError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("fastfeet api: %d %s: %s", e.Status, e.Code, e.Details)
	}
	return fmt.Sprintf("fastfeet api: %d %s", e.Status, e.Code)
}

// IsUnauthorized reports whether err is the 401/UNAUTHORIZED rejection that
// must force the viewer back to the login screen.
func IsUnauthorized(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.Status == 401 && ue.Code == UpstreamErrCodeUnauthorized
}

// UpstreamDetails extracts the server-supplied human-readable message from
// err, or returns fallback when there is none.
func UpstreamDetails(err error, fallback string) string {
	var ue *UpstreamError
	if errors.As(err, &ue) && ue.Details != "" {
		return ue.Details
	}
	return fallback
}
