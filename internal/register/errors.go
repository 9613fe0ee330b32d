package register

import (
	"errors"
	"fmt"
)

// ErrInvariant is matched by all descriptor invariant violations.
var ErrInvariant = errors.New("register descriptor invariant violated")

// InvariantError reports a descriptor whose parallel sequences disagree in
// length. It indicates a defect in the code that generated the descriptor.
type InvariantError struct {
	Register string
	Names    int
	Fields   int
	Chain    int

	// Detail describes where the violation was detected, if known.
	Detail string
}

func (e *InvariantError) Error() string {
	msg := fmt.Sprintf("register %s: %d field names, %d fields, %d decoders",
		e.Register, e.Names, e.Fields, e.Chain)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is makes errors.Is(err, ErrInvariant) succeed.
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}
