package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCredential = errors.New("invalid credential")
var ErrCredentialNotFound = errors.New("no stored credential")
var ErrAuthRejected = errors.New("authentication rejected")
var ErrUnauthorized = errors.New("not authorized")
var ErrInsufficientStock = errors.New("insufficient stock")
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")
var ErrProductNotFound = errors.New("product not found")
var ErrFetchFailed = errors.New("catalog fetch failed")
var ErrUnreachable = errors.New("remote service unreachable")

// ValidationRejectedError is a server-side registration rule violation
// (duplicate email and the like), distinct from a server fault.
type ValidationRejectedError struct {
	Message string
}

func (e *ValidationRejectedError) Error() string {
	return "registration rejected: " + e.Message
}

// InvalidInputError names the draft field that failed local validation.
// It is returned before any network call is attempted.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RemoteError carries a non-2xx rejection whose body is surfaced to the
// user verbatim.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote service returned status %d", e.Status)
	}
	return e.Message
}
