// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrNotFound marks catalog-index lookups that matched no row.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRuleSet marks rule-table validation failures. These are
	// fatal at startup, never per-call; classification itself degrades to
	// Unknown instead of failing.
	ErrInvalidRuleSet = errors.New("invalid rule table")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
