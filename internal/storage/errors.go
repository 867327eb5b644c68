package storage

import (
	"fmt"
	"strings"
)

// ValidationError reports create/update input whose required fields are
// missing or whose values fall outside their enumerated sets. Fields holds
// the name of every offending field.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid opportunity fields: %s", strings.Join(e.Fields, ", "))
}

// NotFoundError reports an update aimed at an identifier that does not
// exist. Reads and deletes signal absence through their results instead.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("opportunity %s not found", e.ID)
}
