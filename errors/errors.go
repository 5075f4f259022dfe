package errors

import (
	"errors"
	"fmt"
)

// Common error types for categorization and handling

var (
	// ErrNotFound indicates a requested knowledge base entry was not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates invalid user input
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedToolArgs indicates the model returned tool arguments that
	// do not parse as the declared schema
	ErrMalformedToolArgs = errors.New("malformed tool arguments")

	// ErrLLMCommunication indicates LLM communication failed
	ErrLLMCommunication = errors.New("llm communication failed")

	// ErrServiceUnavailable indicates a required service is unavailable
	ErrServiceUnavailable = errors.New("service unavailable")
)

// WrapError wraps an error with a context message
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with a formatted context message
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsMalformedToolArgs checks if error came from unparseable tool arguments
func IsMalformedToolArgs(err error) bool {
	return errors.Is(err, ErrMalformedToolArgs)
}

// IsLLMCommunication checks if error is an LLM communication failure
func IsLLMCommunication(err error) bool {
	return errors.Is(err, ErrLLMCommunication)
}
