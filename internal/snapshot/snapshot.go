// Package snapshot captures register values and renders them as human
// readable text using the register descriptor.
package snapshot

import (
	"fmt"

	"github.com/retroenv/regdebug/internal/decoder"
	"github.com/retroenv/regdebug/internal/field"
	"github.com/retroenv/regdebug/internal/register"
)

// Snapshot is a captured register value paired with its descriptor.
// It never accesses the register again after capture.
type Snapshot[T field.UInt] struct {
	raw  T
	desc *register.Descriptor[T]
}

// New returns a snapshot of an already captured register value.
func New[T field.UInt](desc *register.Descriptor[T], raw T) Snapshot[T] {
	return Snapshot[T]{raw: raw, desc: desc}
}

// Capture returns a snapshot of the value returned by read, which is
// called exactly once.
func Capture[T field.UInt](desc *register.Descriptor[T], read func() T) Snapshot[T] {
	return Snapshot[T]{raw: read(), desc: desc}
}

// Raw returns the captured register value.
func (s Snapshot[T]) Raw() T {
	return s.raw
}

// Descriptor returns the descriptor of the captured register.
func (s Snapshot[T]) Descriptor() *register.Descriptor[T] {
	return s.desc
}

// walk drives the decoder chain of the descriptor and calls emit with the
// field name and decoded value of every field in declaration order.
// The field names and fields are consumed through two independent cursors;
// any disagreement in length with the chain panics with an
// *register.InvariantError.
func (s Snapshot[T]) walk(emit func(name string, v decoder.Value[T])) {
	var nameCursor, fieldCursor int

	producer := func() T {
		f, ok := s.desc.FieldAt(fieldCursor)
		if !ok {
			s.violation(fmt.Sprintf("fields exhausted at decoder %d", fieldCursor))
		}
		fieldCursor++
		return f.Read(s.raw)
	}

	sink := func(v decoder.Value[T]) {
		name, ok := s.desc.FieldName(nameCursor)
		if !ok {
			s.violation(fmt.Sprintf("field names exhausted at decoder %d", nameCursor))
		}
		nameCursor++
		emit(name, v)
	}

	s.desc.Chain().Walk(producer, sink)

	if _, ok := s.desc.FieldAt(fieldCursor); ok {
		s.violation(fmt.Sprintf("field %d has no decoder", fieldCursor))
	}
	if _, ok := s.desc.FieldName(nameCursor); ok {
		s.violation(fmt.Sprintf("field name %d has no decoder", nameCursor))
	}
}

func (s Snapshot[T]) violation(detail string) {
	err := &register.InvariantError{Register: s.desc.Name()}
	if validateErr, ok := s.desc.Validate().(*register.InvariantError); ok {
		*err = *validateErr
	}
	err.Detail = detail
	panic(err)
}
