package wikibase

import "fmt"

// ValidationError represents an input validation failure raised before any
// network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// EntityNotFoundError indicates the requested entity was absent from an
// otherwise successful response.
type EntityNotFoundError struct {
	ID string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %q not found", e.ID)
}
