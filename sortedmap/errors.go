package sortedmap

import (
	"errors"
	"fmt"
)

var (
	// ErrModifiedDuringIteration is reported when the map is structurally
	// modified (insert of a new key, delete, clear) while a cursor is alive.
	ErrModifiedDuringIteration = errors.New("sortedmap: map modified during iteration")

	// ErrInvariantViolation is the sentinel wrapped by every *InvariantError.
	ErrInvariantViolation = errors.New("sortedmap: invariant violation")
)

// Rule names the red-black or bookkeeping invariant a Validate failure broke.
type Rule string

const (
	RuleRootBlack   Rule = "root-black"
	RuleRedRed      Rule = "no-red-red"
	RuleBlackHeight Rule = "black-height"
	RuleOrder       Rule = "order"
	RuleParentLink  Rule = "parent-link"
	RuleSize        Rule = "size"
)

// InvariantError describes a structural defect found by Validate.
//
// It wraps ErrInvariantViolation, so errors.Is(err, ErrInvariantViolation) holds.
type InvariantError struct {
	Rule   Rule
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("sortedmap: invariant %s violated: %s", e.Rule, e.Detail)
}

func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }
