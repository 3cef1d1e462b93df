package replay

import (
	"fmt"

	"github.com/corvid-labs/sqlbind/args"
)

// UnsupportedArgumentError reports a recorded invocation the target
// context cannot accept. Position is 1-based over the recorded sequence.
type UnsupportedArgumentError struct {
	Kind     args.Kind
	Name     string
	Position int
}

// Error implements the error interface.
func (e *UnsupportedArgumentError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("argument %d (%s): %s arguments cannot replay onto a select context", e.Position, e.Name, e.Kind)
	}
	return fmt.Sprintf("argument %d: %s arguments cannot replay onto a select context", e.Position, e.Kind)
}
