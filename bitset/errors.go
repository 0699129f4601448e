package bitset

import (
	"errors"
	"fmt"
)

var (
	// ErrModifiedDuringIteration is the panic value of an iterator whose set
	// was mutated by the loop body.
	ErrModifiedDuringIteration = errors.New("bitset: set modified during iteration")

	// ErrWordOutOfRange is returned by SetWord for a word position beyond MaxWord.
	ErrWordOutOfRange = errors.New("bitset: word position out of range")

	// ErrInvariantViolation is the sentinel wrapped by every *InvariantError.
	ErrInvariantViolation = errors.New("bitset: invariant violation")
)

// InvariantError reports a skip bit that disagrees with the bits it summarizes.
type InvariantError struct {
	Page  int
	Layer int
	Bit   int
	Want  bool
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("bitset: page %d: layer %d skip bit %d is %t, want %t", e.Page, e.Layer, e.Bit, !e.Want, e.Want)
}

func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }
