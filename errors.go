package strvec

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is returned when a vector cannot obtain memory for slots
	// or for a copied value. The configured memory controller's error is
	// wrapped alongside it.
	ErrAllocation = errors.New("allocation failed")
)

// AllocationError describes a refused allocation.
//
// It matches ErrAllocation with errors.Is; the controller's error (if any)
// can be accessed via errors.Unwrap.
type AllocationError struct {
	Op    string
	Bytes int64
	cause error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("%s: cannot allocate %d bytes: %v", e.Op, e.Bytes, e.cause)
}

func (e *AllocationError) Is(target error) bool { return target == ErrAllocation }

func (e *AllocationError) Unwrap() error { return e.cause }

// ErrIndexOutOfRange indicates an index outside the range an operation accepts.
//
// Vectors panic with this value; it is a programming error, not a runtime condition.
type ErrIndexOutOfRange struct {
	Op     string
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0:%d]", e.Op, e.Index, e.Length)
}

// ErrInvalidRange indicates a malformed [From, To) range.
type ErrInvalidRange struct {
	From   int
	To     int
	Length int
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range [%d:%d) for length %d", e.From, e.To, e.Length)
}

// ErrInvalidCapacity indicates a negative capacity.
type ErrInvalidCapacity struct {
	Capacity int
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("invalid capacity: %d", e.Capacity)
}

func allocationError(op string, bytes int64, err error) error {
	return &AllocationError{Op: op, Bytes: bytes, cause: err}
}
