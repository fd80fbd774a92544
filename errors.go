package hostid

import (
	"errors"
	"fmt"
)

// Sentinel errors. Only [ErrInvalidArgument] and [ErrInternalFault] ever cross
// the package boundary; the others describe why a lookup collapsed to
// [Absent] and only appear in debug logs.
var (
	// ErrInvalidArgument is returned synchronously by the asynchronous entry
	// points when no completion callback is supplied.
	ErrInvalidArgument = errors.New("invalid argument: completion callback expected")

	// ErrInternalFault is matched by the error delivered to a completion
	// callback when the worker step panicked.
	ErrInternalFault = errors.New("internal fault while resolving machine ID")

	// ErrNotFound means the OS store was reachable but held no identifier.
	ErrNotFound = errors.New("machine ID not found")

	// ErrNotSupported means the current platform has no machine ID store.
	ErrNotSupported = errors.New("platform not supported")
)

// CommandError records a failed system command execution.
// Use [errors.As] to extract the command name from wrapped errors.
type CommandError struct {
	Command string // command name, e.g. "ioreg"
	Err     error  // underlying error from exec
}

// Error returns a human-readable description of the command failure.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ParseError records a failure while parsing command output.
type ParseError struct {
	Source string // data source, e.g. "ioreg plist"
	Err    error  // underlying parse error
}

// Error returns a human-readable description of the parse failure.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// FaultError carries the value recovered from a panic in an asynchronous
// worker step. It matches [ErrInternalFault] with [errors.Is].
type FaultError struct {
	Recovered any
}

// Error returns a human-readable description of the fault.
func (e *FaultError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInternalFault, e.Recovered)
}

// Unwrap returns [ErrInternalFault], or the recovered value when it is itself
// an error so callers can inspect both.
func (e *FaultError) Unwrap() []error {
	if err, ok := e.Recovered.(error); ok {
		return []error{ErrInternalFault, err}
	}

	return []error{ErrInternalFault}
}
