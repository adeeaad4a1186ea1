package prefs

import "fmt"

// ReadError reports a persisted record that could not be read or decoded.
// Load recovers from it by falling back to defaults.
type ReadError struct {
	Backend string
	Err     error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read theme preferences from %s: %s", e.Backend, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a record that could not be written. The in-memory
// preferences stay valid for the rest of the session.
type WriteError struct {
	Backend string
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write theme preferences to %s: %s", e.Backend, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
