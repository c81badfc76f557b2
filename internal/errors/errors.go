package errors

import (
	"errors"
	"fmt"
)

// Common error types for the compliance console
var (
	// Backend call errors
	ErrNetwork  = errors.New("backend unreachable")
	ErrHTTP     = errors.New("backend request failed")
	ErrParse    = errors.New("malformed backend response")
	ErrResponse = errors.New("unexpected backend response shape")

	// OAuth flow errors
	ErrMissingCode  = errors.New("missing authorization code")
	ErrMissingState = errors.New("missing state parameter")
	ErrUnknownState = errors.New("unrecognized state parameter")
	ErrCodeConsumed = errors.New("authorization code already processed")
	ErrExchangeFail = errors.New("authorization code exchange rejected")
	ErrStateExpired = errors.New("authorization flow expired")

	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoConnection     = errors.New("required connection missing")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
