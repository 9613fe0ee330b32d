package field

import "fmt"

// Variant is a named value that a field can hold.
type Variant[T UInt] struct {
	Name  string
	Value T
}

// Variants is a closed set of symbolic values of a field.
// Names and values are unique within the set, so at most one variant
// matches a given value.
type Variants[T UInt] struct {
	list []Variant[T]
}

// NewVariants returns a variant set. It panics on empty or duplicate
// names and on duplicate values.
func NewVariants[T UInt](variants ...Variant[T]) Variants[T] {
	names := make(map[string]struct{}, len(variants))
	values := make(map[T]string, len(variants))

	for _, v := range variants {
		if v.Name == "" {
			panic(fmt.Sprintf("field: variant with value %d has no name", uint64(v.Value)))
		}
		if _, ok := names[v.Name]; ok {
			panic(fmt.Sprintf("field: duplicate variant name '%s'", v.Name))
		}
		if other, ok := values[v.Value]; ok {
			panic(fmt.Sprintf("field: variants '%s' and '%s' share value %d", other, v.Name, uint64(v.Value)))
		}
		names[v.Name] = struct{}{}
		values[v.Value] = v.Name
	}

	list := make([]Variant[T], len(variants))
	copy(list, variants)
	return Variants[T]{list: list}
}

// Lookup returns the variant that has the given value.
func (v Variants[T]) Lookup(value T) (Variant[T], bool) {
	for _, variant := range v.list {
		if variant.Value == value {
			return variant, true
		}
	}
	return Variant[T]{}, false
}

// Len returns the number of variants.
func (v Variants[T]) Len() int {
	return len(v.list)
}

// All returns a copy of the variants in declaration order.
func (v Variants[T]) All() []Variant[T] {
	list := make([]Variant[T], len(v.list))
	copy(list, v.list)
	return list
}
