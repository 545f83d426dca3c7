// Package apperr holds the error types the HTTP layer translates into
// status codes.
package apperr

import (
	"errors"
	"fmt"
)

// ApplicationError marks a failure caused by the client. The fault
// translator answers it with 400 and Message; any other error becomes a
// generic 500.
type ApplicationError struct {
	Message string
	Err     error
}

func (e *ApplicationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ApplicationError) Unwrap() error {
	return e.Err
}

// New returns an ApplicationError with no underlying cause.
func New(message string) *ApplicationError {
	return &ApplicationError{Message: message}
}

// Wrap tags cause as client-caused, exposing only message to the caller.
func Wrap(cause error, message string) *ApplicationError {
	return &ApplicationError{Message: message, Err: cause}
}

// AsApplication reports whether err carries an ApplicationError anywhere in its chain.
func AsApplication(err error) (*ApplicationError, bool) {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Response is the JSON body of every translated fault and of direct
// 400/404 answers.
type Response struct {
	StatusCode int    `json:"StatusCode"`
	Message    string `json:"Message"`
}
