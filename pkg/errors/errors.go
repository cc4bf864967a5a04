package errors

import (
	"fmt"
)

// StorageError represents a database open, migrate, read or write failure.
// Record holds the offending row's content when a single write failed, so the
// failure can be diagnosed without a debugger.
type StorageError struct {
	Op     string
	Path   string
	Record any
	Err    error
}

func (e *StorageError) Error() string {
	msg := "storage " + e.Op
	if e.Path != "" {
		msg += fmt.Sprintf(" %s", e.Path)
	}
	if e.Record != nil {
		msg += fmt.Sprintf(" record=%+v", e.Record)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StorageError) Unwrap() error { return e.Err }

// ParseError represents a malformed or schema-mismatched import file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError represents a filesystem access failure during import traversal.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
