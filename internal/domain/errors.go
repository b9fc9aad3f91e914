package domain

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput indicates a scoring call with an empty checklist or a
	// zero total. Static configuration should make this unreachable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingRequiredField indicates prompt composition was attempted
	// without all required fields.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrUnknownItem indicates a checklist id that is not in the catalog.
	ErrUnknownItem = errors.New("unknown checklist item")
)

// MissingFieldError lists every required field that was empty.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return "please fill in all required fields: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}

// UnknownItemError names the checklist id that failed lookup.
type UnknownItemError struct {
	Checklist string
	ID        string
}

func (e *UnknownItemError) Error() string {
	return "unknown " + e.Checklist + " item " + `"` + e.ID + `"`
}

func (e *UnknownItemError) Is(target error) bool {
	return target == ErrUnknownItem
}
