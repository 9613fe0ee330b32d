// Package catalog contains the register descriptors known to the tool and
// bridges their different register widths for decoding raw dump values.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/retroenv/regdebug/internal/field"
	"github.com/retroenv/regdebug/internal/register"
	"github.com/retroenv/regdebug/internal/snapshot"
)

var (
	// ErrValueTooWide is returned when a raw value has bits set above the
	// register width.
	ErrValueTooWide = errors.New("value exceeds register width")
	// ErrUnknownRegister is returned for register names missing in the catalog.
	ErrUnknownRegister = errors.New("unknown register")
)

// Entry is a catalog register of any width.
type Entry interface {
	Name() string
	Description() string
	Width() uint
	Validate() error
	Layout() Layout
	Decode(raw uint64) (Decoded, error)
}

// Decoded is a decoded raw register value.
type Decoded struct {
	Raw      uint64
	Width    uint
	Rendered snapshot.Rendered
}

// Layout describes the field layout of a register for listings and
// debug output.
type Layout struct {
	Name   string
	Width  uint
	Fields []FieldLayout
}

// FieldLayout describes a single field of a register layout.
type FieldLayout struct {
	Name     string
	Bits     string
	Variants []string
}

type entry[T field.UInt] struct {
	desc        *register.Descriptor[T]
	defs        []register.FieldDef[T]
	description string
}

func define[T field.UInt](name, description string, defs ...register.FieldDef[T]) *entry[T] {
	return &entry[T]{
		desc:        register.Define(name, defs...),
		defs:        defs,
		description: description,
	}
}

func (e *entry[T]) Name() string        { return e.desc.Name() }
func (e *entry[T]) Description() string { return e.description }
func (e *entry[T]) Width() uint         { return e.desc.Width() }
func (e *entry[T]) Validate() error     { return e.desc.Validate() }

// Decode renders a raw value of the register. Values with bits set above
// the register width are rejected.
func (e *entry[T]) Decode(raw uint64) (Decoded, error) {
	if raw > uint64(^T(0)) {
		return Decoded{}, fmt.Errorf("%w: %#x does not fit %d bit register %s",
			ErrValueTooWide, raw, e.Width(), e.Name())
	}

	s := snapshot.New(e.desc, T(raw))
	return Decoded{
		Raw:      raw,
		Width:    e.Width(),
		Rendered: s.Render(),
	}, nil
}

func (e *entry[T]) Layout() Layout {
	layout := Layout{
		Name:   e.Name(),
		Width:  e.Width(),
		Fields: make([]FieldLayout, 0, len(e.defs)),
	}
	for _, def := range e.defs {
		fl := FieldLayout{
			Name: def.Name(),
			Bits: def.Field().String(),
		}
		for _, v := range def.Variants().All() {
			fl.Variants = append(fl.Variants, fmt.Sprintf("%s=%d", v.Name, uint64(v.Value)))
		}
		layout.Fields = append(layout.Fields, fl)
	}
	return layout
}

var entries = map[string]Entry{}

func add(e Entry) {
	key := strings.ToLower(e.Name())
	if _, ok := entries[key]; ok {
		panic(fmt.Sprintf("catalog: duplicate register '%s'", e.Name()))
	}
	entries[key] = e
}

// Lookup returns the catalog entry for a register name, ignoring case.
func Lookup(name string) (Entry, bool) {
	e, ok := entries[strings.ToLower(name)]
	return e, ok
}

// Names returns the sorted names of all catalog registers.
func Names() []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// All returns all catalog entries sorted by name.
func All() []Entry {
	names := Names()
	all := make([]Entry, 0, len(names))
	for _, name := range names {
		all = append(all, entries[strings.ToLower(name)])
	}
	return all
}
