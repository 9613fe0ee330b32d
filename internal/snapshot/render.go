package snapshot

import (
	"fmt"

	"github.com/retroenv/regdebug/internal/decoder"
)

const prettyIndent = "    "

// Pair is a single rendered register field.
type Pair struct {
	Name     string
	Value    string
	Symbolic bool // value is a variant name
}

// Rendered is the rendered representation of a register snapshot.
type Rendered struct {
	Name   string
	Fields []Pair
}

// Render returns the fields of the snapshot in declaration order.
func (s Snapshot[T]) Render() Rendered {
	r := Rendered{
		Name:   s.desc.Name(),
		Fields: make([]Pair, 0, s.desc.Len()),
	}
	s.walk(func(name string, v decoder.Value[T]) {
		_, symbolic := v.Symbol()
		r.Fields = append(r.Fields, Pair{Name: name, Value: v.String(), Symbolic: symbolic})
	})
	return r
}

// AppendText appends the compact representation of the snapshot to dst,
// for example "R { f0: 7, f1: Y }".
func (s Snapshot[T]) AppendText(dst []byte) []byte {
	dst = append(dst, s.desc.Name()...)
	first := true
	s.walk(func(name string, v decoder.Value[T]) {
		if first {
			dst = append(dst, " { "...)
			first = false
		} else {
			dst = append(dst, ", "...)
		}
		dst = append(dst, name...)
		dst = append(dst, ": "...)
		dst = v.AppendText(dst)
	})
	if !first {
		dst = append(dst, " }"...)
	}
	return dst
}

// AppendPretty appends the multi-line representation of the snapshot to
// dst, with one field per line.
func (s Snapshot[T]) AppendPretty(dst []byte) []byte {
	dst = append(dst, s.desc.Name()...)
	first := true
	s.walk(func(name string, v decoder.Value[T]) {
		if first {
			dst = append(dst, " {\n"...)
			first = false
		}
		dst = append(dst, prettyIndent...)
		dst = append(dst, name...)
		dst = append(dst, ": "...)
		dst = v.AppendText(dst)
		dst = append(dst, ",\n"...)
	})
	if !first {
		dst = append(dst, '}')
	}
	return dst
}

func (s Snapshot[T]) String() string {
	return string(s.AppendText(nil))
}

// Pretty returns the multi-line representation of the snapshot.
func (s Snapshot[T]) Pretty() string {
	return string(s.AppendPretty(nil))
}

// Format implements fmt.Formatter. The %+v verb selects the multi-line
// representation.
func (s Snapshot[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if f.Flag('+') {
			_, _ = f.Write(s.AppendPretty(nil))
			return
		}
		_, _ = f.Write(s.AppendText(nil))
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(snapshot %s)", verb, s.desc.Name())
	}
}

// AppendText appends the compact representation to dst.
func (r Rendered) AppendText(dst []byte) []byte {
	dst = append(dst, r.Name...)
	if len(r.Fields) == 0 {
		return dst
	}
	dst = append(dst, " { "...)
	for i, p := range r.Fields {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = append(dst, p.Name...)
		dst = append(dst, ": "...)
		dst = append(dst, p.Value...)
	}
	return append(dst, " }"...)
}

// AppendPretty appends the multi-line representation to dst.
func (r Rendered) AppendPretty(dst []byte) []byte {
	dst = append(dst, r.Name...)
	if len(r.Fields) == 0 {
		return dst
	}
	dst = append(dst, " {\n"...)
	for _, p := range r.Fields {
		dst = append(dst, prettyIndent...)
		dst = append(dst, p.Name...)
		dst = append(dst, ": "...)
		dst = append(dst, p.Value...)
		dst = append(dst, ",\n"...)
	}
	return append(dst, '}')
}

func (r Rendered) String() string {
	return string(r.AppendText(nil))
}

// Pretty returns the multi-line representation.
func (r Rendered) Pretty() string {
	return string(r.AppendPretty(nil))
}
