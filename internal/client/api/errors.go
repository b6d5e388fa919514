package api

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout means the request was aborted because the configured
	// timeout elapsed before a response arrived.
	ErrTimeout = errors.New("request timed out")

	// ErrInvalidResponse means the response body could not be parsed as
	// JSON, regardless of status code.
	ErrInvalidResponse = errors.New("invalid server response")
)

// APIError is a non-2xx response normalized into an error. Message is taken
// from the body's "message" or "error" field, falling back to "HTTP {status}".
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, body errorBody) *APIError {
	msg := body.Message
	if msg == "" {
		msg = body.Err
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	return &APIError{Status: status, Message: msg}
}

// errorBody captures the error fields a failing response may carry.
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}
