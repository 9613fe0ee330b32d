// Package decoder implements the per register chain of field value decoders
// that turns raw field values into their symbolic representation.
package decoder

import (
	"strconv"

	"github.com/retroenv/regdebug/internal/field"
)

// Decoder tries to interpret a raw field value as one of the symbolic
// variants of the field. It returns the variant name on a match.
type Decoder[T field.UInt] func(v T) (string, bool)

// Passthrough returns a decoder for fields without symbolic variants.
func Passthrough[T field.UInt]() Decoder[T] {
	return func(T) (string, bool) {
		return "", false
	}
}

// FromVariants returns a decoder that matches the given variant set.
func FromVariants[T field.UInt](variants field.Variants[T]) Decoder[T] {
	if variants.Len() == 0 {
		return Passthrough[T]()
	}
	return func(v T) (string, bool) {
		variant, ok := variants.Lookup(v)
		if !ok {
			return "", false
		}
		return variant.Name, true
	}
}

// Value is the result of decoding a single field: either a symbolic
// variant or the raw value.
type Value[T field.UInt] struct {
	raw    T
	symbol string
	ok     bool
}

// Raw returns the raw field value.
func (v Value[T]) Raw() T {
	return v.raw
}

// Symbol returns the variant name if the value matched a variant.
func (v Value[T]) Symbol() (string, bool) {
	return v.symbol, v.ok
}

// AppendText appends the variant name or the decimal raw value to dst.
func (v Value[T]) AppendText(dst []byte) []byte {
	if v.ok {
		return append(dst, v.symbol...)
	}
	return strconv.AppendUint(dst, uint64(v.raw), 10)
}

func (v Value[T]) String() string {
	if v.ok {
		return v.symbol
	}
	return strconv.FormatUint(uint64(v.raw), 10)
}
