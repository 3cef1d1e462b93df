package bind

import "fmt"

// BindingError reports a sink that rejected a value, or a value no sink
// channel can carry. Position is 1-based.
type BindingError struct {
	Position int
	Err      error
}

// Error implements the error interface.
func (e *BindingError) Error() string {
	return fmt.Sprintf("bind parameter %d: %v", e.Position, e.Err)
}

// Unwrap returns the underlying cause.
func (e *BindingError) Unwrap() error { return e.Err }

// StreamDrainError reports an I/O failure while buffering a CLOB or BLOB
// stream into memory. Unlike the other errors in this layer it may reflect
// a transient source fault; retrying is the caller's decision, never done
// here.
type StreamDrainError struct {
	Position int
	Err      error
}

// Error implements the error interface.
func (e *StreamDrainError) Error() string {
	return fmt.Sprintf("drain stream for parameter %d: %v", e.Position, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StreamDrainError) Unwrap() error { return e.Err }
