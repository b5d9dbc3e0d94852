package services

import "fmt"

// ValidationError reports malformed caller-supplied data. No state change.
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	return e.Msg
}

// NotFoundError reports an unknown resource, or one the requesting user does
// not own. No state change.
type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ConflictError reports a business-rule failure: not enough seats, a departed
// travel option, an already-cancelled booking, or a lost race on the seat
// counter. Distinguished from NotFoundError so callers can retry or re-read.
type ConflictError struct {
	Msg string
}

func (e ConflictError) Error() string { return e.Msg }
