package gateflow

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors reported by the construction and simulation API. Errors returned
// by Circuit methods may wrap these with context; use errors.Cause to get
// back to the sentinel.
var (
	// ErrNilWire is returned by Connect when given a nil wire.
	ErrNilWire = errors.New("connect requires a non-nil wire")
	// ErrSourceConflict is returned when a wire's source gate would be
	// reassigned to a different gate.
	ErrSourceConflict = errors.New("wire already has a different source gate")
	// ErrOutputConflict is returned when a gate would drive a second
	// output wire.
	ErrOutputConflict = errors.New("gate already drives a different output wire")
	// ErrConnectivity is returned by Finalize when gate input lists and
	// wire destination lists do not mirror each other.
	ErrConnectivity = errors.New("inconsistent connectivity")
	// ErrCycle is returned by Finalize when the gate dependency graph is
	// not acyclic.
	ErrCycle = errors.New("circuit contains a cycle")
	// ErrNotFinalized is returned by simulation calls made before a
	// successful Finalize.
	ErrNotFinalized = errors.New("circuit must be finalized")
	// ErrIndexRange is returned for an out-of-range primary pin index.
	ErrIndexRange = errors.New("pin index out of range")
)

// An ArityError reports a gate evaluated or rewritten with the wrong number
// of inputs.
type ArityError struct {
	Type  Type
	Want  int
	Exact bool // exactly Want inputs required, otherwise at least Want
	Got   int
}

func (e *ArityError) Error() string {
	if e.Exact {
		return fmt.Sprintf("%v gate requires exactly %d input(s), got %d", e.Type, e.Want, e.Got)
	}
	return fmt.Sprintf("%v gate requires at least %d inputs, got %d", e.Type, e.Want, e.Got)
}
