// Package errors provides common, reusable error values and helpers.
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrTransport          = errors.New("transport error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidURL         = errors.New("invalid url")
)

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
