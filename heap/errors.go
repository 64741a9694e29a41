// ABOUTME: Sentinel errors for heap contract violations
// ABOUTME: Overflow, underflow, and kind-mismatch conditions

package heap

import "errors"

var (
	// ErrStackOverflow is returned when pushing onto a full root stack
	ErrStackOverflow = errors.New("root stack overflow")

	// ErrStackUnderflow is returned when popping from an empty root stack
	ErrStackUnderflow = errors.New("root stack underflow")

	// ErrTypeMismatch is returned when an operation requires a different
	// object kind, e.g. mutating the tail of a non-pair
	ErrTypeMismatch = errors.New("object kind mismatch")

	// ErrInvalidRef is returned when an operation is given NilRef, an
	// out-of-range reference, or a reference to a reclaimed object
	ErrInvalidRef = errors.New("invalid object reference")
)
