package types

import (
	"errors"
	"fmt"
)

// Item and catalog errors.
var (
	ErrInvalidItem    = errors.New("invalid item data")
	ErrNilItem        = errors.New("item cannot be nil")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrUnknownKind    = errors.New("unknown item kind")
)

// ValidationError reports a field value that violates its rule. It wraps
// ErrInvalidItem so callers can match either the type or the sentinel.
type ValidationError struct {
	Field   string // Field name, e.g. "title" or "issue_number".
	Message string // Human-readable reason.
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidItem
}

// invalid builds a ValidationError for field with a formatted message.
func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// DuplicateEntryError is returned when an item with the same title,
// publisher and publication year is already in the catalog.
type DuplicateEntryError struct {
	Title           string
	Publisher       string
	PublicationYear int
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("duplicate entry found: title=%q, publisher=%q, year=%d",
		e.Title, e.Publisher, e.PublicationYear)
}

func (e *DuplicateEntryError) Unwrap() error {
	return ErrDuplicateEntry
}
