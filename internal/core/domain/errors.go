package domain

import "errors"

var (
	// ErrUnauthenticated means no caller identity resolved to a user record.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrAccountDisabled means the caller resolved but has been deactivated.
	ErrAccountDisabled = errors.New("account is not active")
	// ErrForbidden means the caller is authenticated but lacks admin or
	// ownership rights for the operation.
	ErrForbidden = errors.New("access forbidden")

	ErrQuestionNotFound = errors.New("question not found")
	ErrUserNotFound     = errors.New("user not found")
)
