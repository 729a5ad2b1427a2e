package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Operation error types

var (
	// ErrUnknownOperation indicates the operation kind matches no built-in and no custom task
	ErrUnknownOperation = errors.New("unknown operation type")

	// ErrValidation indicates a custom task definition is invalid
	ErrValidation = errors.New("validation failed")

	// ErrPromptTooLong indicates the prompt exceeds the estimated token ceiling
	ErrPromptTooLong = errors.New("prompt too long")

	// ErrMissingAPIKey indicates no credential is available for the provider
	ErrMissingAPIKey = errors.New("API key not configured")

	// ErrAudioFileNotFound indicates the speech-to-text input file does not exist
	ErrAudioFileNotFound = errors.New("audio file not found")

	// ErrEmptyInput indicates a blank text-to-speech input
	ErrEmptyInput = errors.New("text input is required for text-to-speech")

	// ErrProviderHTTP indicates the provider answered with a non-2xx status
	ErrProviderHTTP = errors.New("provider request failed")

	// ErrProviderParse indicates the provider response could not be understood
	ErrProviderParse = errors.New("failed to parse provider response")

	// ErrTransport indicates a network failure or timeout talking to the provider
	ErrTransport = errors.New("transport error")

	// ErrCancelled indicates the streaming operation was cancelled by the user
	ErrCancelled = errors.New("request cancelled")
)

// Store error types

var (
	// ErrCustomTaskNotFound indicates no custom task exists with the given id
	ErrCustomTaskNotFound = errors.New("custom task not found")

	// ErrHistoryEntryNotFound indicates no history entry exists with the given id
	ErrHistoryEntryNotFound = errors.New("history entry not found")
)

// PromptTooLongError carries the estimate that tripped the guard
type PromptTooLongError struct {
	Estimated int
	Limit     int
}

func (e *PromptTooLongError) Error() string {
	return fmt.Sprintf("Prompt too long (~%d estimated tokens). Maximum allowed: %d tokens.", e.Estimated, e.Limit)
}

// Is reports whether target is ErrPromptTooLong
func (e *PromptTooLongError) Is(target error) bool {
	return target == ErrPromptTooLong
}

// ValidationError lists every problem found in a custom task definition
type ValidationError struct {
	Reasons []string
	Missing []string
	Extra   []string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Reasons)+2)
	parts = append(parts, e.Reasons...)
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("options without a placeholder in the prompt: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("placeholders without a matching option: %s", strings.Join(e.Extra, ", ")))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Is reports whether target is ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// HasProblems reports whether anything was recorded
func (e *ValidationError) HasProblems() bool {
	return len(e.Reasons) > 0 || len(e.Missing) > 0 || len(e.Extra) > 0
}

// ProviderHTTPError carries the provider status code and body verbatim
type ProviderHTTPError struct {
	StatusCode int
	Body       string
}

func (e *ProviderHTTPError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// Is reports whether target is ErrProviderHTTP
func (e *ProviderHTTPError) Is(target error) bool {
	return target == ErrProviderHTTP
}
