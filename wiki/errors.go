package wiki

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

// PageNotFoundError indicates the expected page payload was absent from an
// otherwise successful response.
type PageNotFoundError struct {
	Title  string
	Reason string
}

func (e *PageNotFoundError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("page %q not found: %s", e.Title, e.Reason)
	}
	return fmt.Sprintf("page %q not found", e.Title)
}
