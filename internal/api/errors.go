package api

import (
	"errors"
	"fmt"
	"net/http"
)

// The closed set of request-side failures. Remote failures keep their own
// types in internal/github; statusFor maps every kind to an HTTP status at
// the response boundary.

// InvalidInputError is a request body that is not JSON or lacks required
// fields.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// UnauthorizedError is a webhook request whose signature did not verify.
type UnauthorizedError struct{}

func (e *UnauthorizedError) Error() string {
	return "Invalid signature"
}

// PreconditionFailedError is a remote read that produced no version token, so
// no conditional write can be attempted.
type PreconditionFailedError struct {
	Owner string
	Repo  string
	Path  string
}

func (e *PreconditionFailedError) Error() string {
	return fmt.Sprintf("%s/%s/%s: file not found or no permission", e.Owner, e.Repo, e.Path)
}

// MalformedPayloadError is a webhook body that verified but did not parse as
// JSON.
type MalformedPayloadError struct {
	Err error
}

func (e *MalformedPayloadError) Error() string {
	return "malformed webhook payload: " + e.Err.Error()
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

func statusFor(err error) int {
	var invalid *InvalidInputError
	var unauthorized *UnauthorizedError
	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	default:
		// PreconditionFailed, MalformedPayload and every remote failure
		// surface as internal errors with the cause in the body.
		return http.StatusInternalServerError
	}
}
