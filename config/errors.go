package config

import (
	"fmt"
	"slices"
)

type ErrorKind string

const (
	ErrParsing    ErrorKind = "parsing"
	ErrValidation ErrorKind = "validation"
	ErrMissing    ErrorKind = "missing"
)

// Error is returned by Load and the Check helpers.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// SecretString hides its value from fmt and slog output.
type SecretString string

const redacted = "***REDACTED***"

func (s SecretString) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

func (s SecretString) Unmask() string { return string(s) }

func sorted(s []string) []string {
	slices.Sort(s)
	return s
}
