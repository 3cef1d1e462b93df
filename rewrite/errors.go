package rewrite

import (
	"fmt"
	"strings"
)

// MissingParameterError reports a placeholder name the value map did not
// supply.
type MissingParameterError struct {
	Name string
}

// Error implements the error interface.
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing value for parameter %q", e.Name)
}

// UnusedParameterError reports map keys that no placeholder in the SQL
// consumes. Names is sorted.
type UnusedParameterError struct {
	Names []string
}

// Error implements the error interface.
func (e *UnusedParameterError) Error() string {
	return fmt.Sprintf("unused parameters: %s", strings.Join(e.Names, ", "))
}
