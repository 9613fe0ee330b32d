// Package register implements register type descriptors: the static layout
// of a register consisting of its name, its ordered field names, the field
// accessors and the matching chain of field value decoders.
package register

import (
	"fmt"

	"github.com/retroenv/regdebug/internal/decoder"
	"github.com/retroenv/regdebug/internal/field"
)

// Descriptor describes the layout of a register of type T.
// Index i of the field names, the fields and the decoder chain refers to
// the same register field. Descriptors are immutable.
type Descriptor[T field.UInt] struct {
	name       string
	fieldNames []string
	fields     []field.Field[T]
	chain      *decoder.Chain[T]
}

// FieldDef defines a single field of a register for Define.
type FieldDef[T field.UInt] struct {
	name     string
	field    field.Field[T]
	variants field.Variants[T]
}

// Field defines a register field without symbolic variants.
func Field[T field.UInt](name string, f field.Field[T]) FieldDef[T] {
	return FieldDef[T]{name: name, field: f}
}

// Enum defines a register field with a closed set of symbolic variants.
func Enum[T field.UInt](name string, f field.Field[T], variants ...field.Variant[T]) FieldDef[T] {
	return FieldDef[T]{
		name:     name,
		field:    f,
		variants: field.NewVariants(variants...),
	}
}

// Name returns the field name.
func (f FieldDef[T]) Name() string { return f.name }

// Field returns the field accessor.
func (f FieldDef[T]) Field() field.Field[T] { return f.field }

// Variants returns the symbolic variants of the field.
func (f FieldDef[T]) Variants() field.Variants[T] { return f.variants }

// Define returns a descriptor built from a list of field definitions.
// The parallel sequences of the descriptor are derived from the same list,
// which keeps them aligned. Define panics on an invalid definition.
func Define[T field.UInt](name string, defs ...FieldDef[T]) *Descriptor[T] {
	if name == "" {
		panic("register: empty register name")
	}

	names := make([]string, 0, len(defs))
	fields := make([]field.Field[T], 0, len(defs))
	decoders := make([]decoder.Decoder[T], 0, len(defs))
	seen := make(map[string]struct{}, len(defs))

	for _, def := range defs {
		if def.name == "" {
			panic(fmt.Sprintf("register %s: field without name", name))
		}
		if _, ok := seen[def.name]; ok {
			panic(fmt.Sprintf("register %s: duplicate field '%s'", name, def.name))
		}
		seen[def.name] = struct{}{}

		for _, variant := range def.variants.All() {
			if !def.field.Fits(variant.Value) {
				panic(fmt.Sprintf("register %s: variant %s.%s value %d does not fit %d bit field",
					name, def.name, variant.Name, uint64(variant.Value), def.field.Width()))
			}
		}

		names = append(names, def.name)
		fields = append(fields, def.field)
		decoders = append(decoders, decoder.FromVariants(def.variants))
	}

	return &Descriptor[T]{
		name:       name,
		fieldNames: names,
		fields:     fields,
		chain:      decoder.Of(decoders...),
	}
}

// New returns a descriptor from already generated parallel sequences.
// No consistency checks are performed, use Validate to verify the result.
func New[T field.UInt](name string, fieldNames []string, fields []field.Field[T], chain *decoder.Chain[T]) *Descriptor[T] {
	return &Descriptor[T]{
		name:       name,
		fieldNames: fieldNames,
		fields:     fields,
		chain:      chain,
	}
}

// Name returns the name of the register.
func (d *Descriptor[T]) Name() string {
	return d.name
}

// FieldNames returns a copy of the field names in declaration order.
func (d *Descriptor[T]) FieldNames() []string {
	names := make([]string, len(d.fieldNames))
	copy(names, d.fieldNames)
	return names
}

// Fields returns a copy of the fields in declaration order.
func (d *Descriptor[T]) Fields() []field.Field[T] {
	fields := make([]field.Field[T], len(d.fields))
	copy(fields, d.fields)
	return fields
}

// FieldName returns the name of the field at index i.
func (d *Descriptor[T]) FieldName(i int) (string, bool) {
	if i < 0 || i >= len(d.fieldNames) {
		return "", false
	}
	return d.fieldNames[i], true
}

// FieldAt returns the field at index i.
func (d *Descriptor[T]) FieldAt(i int) (field.Field[T], bool) {
	if i < 0 || i >= len(d.fields) {
		return field.Field[T]{}, false
	}
	return d.fields[i], true
}

// Chain returns the decoder chain of the register.
func (d *Descriptor[T]) Chain() *decoder.Chain[T] {
	return d.chain
}

// Len returns the number of fields of the register.
func (d *Descriptor[T]) Len() int {
	return len(d.fieldNames)
}

// Width returns the bit width of the register.
func (d *Descriptor[T]) Width() uint {
	return field.Size[T]()
}

// Validate checks that the field names, the fields and the decoder chain
// of the descriptor all have the same length.
func (d *Descriptor[T]) Validate() error {
	names, fields, chain := len(d.fieldNames), len(d.fields), d.chain.Len()
	if names == fields && fields == chain {
		return nil
	}
	return &InvariantError{
		Register: d.name,
		Names:    names,
		Fields:   fields,
		Chain:    chain,
	}
}
