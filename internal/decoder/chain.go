package decoder

import "github.com/retroenv/regdebug/internal/field"

// Chain is an ordered list of field decoders, one node per register field.
// A nil chain is the empty, terminal chain; any other chain is a node that
// holds a decoder and the rest of the chain. Chains are immutable.
type Chain[T field.UInt] struct {
	decode Decoder[T]
	next   *Chain[T]
}

// Empty returns the terminal chain.
func Empty[T field.UInt]() *Chain[T] {
	return nil
}

// Node returns a chain that decodes one field with d and continues with next.
func Node[T field.UInt](d Decoder[T], next *Chain[T]) *Chain[T] {
	if d == nil {
		d = Passthrough[T]()
	}
	return &Chain[T]{decode: d, next: next}
}

// Of returns a chain of the given decoders in order.
func Of[T field.UInt](decoders ...Decoder[T]) *Chain[T] {
	chain := Empty[T]()
	for i := len(decoders) - 1; i >= 0; i-- {
		chain = Node(decoders[i], chain)
	}
	return chain
}

// Len returns the number of nodes in the chain.
func (c *Chain[T]) Len() int {
	n := 0
	for node := c; node != nil; node = node.next {
		n++
	}
	return n
}

// Walk decodes all fields of the chain in node order.
// For every node it calls producer exactly once to get the raw field value
// and then sink exactly once with either the matching variant or the
// unchanged raw value. The empty chain calls neither.
func (c *Chain[T]) Walk(producer func() T, sink func(Value[T])) {
	for node := c; node != nil; node = node.next {
		raw := producer()
		if name, ok := node.decode(raw); ok {
			sink(Value[T]{raw: raw, symbol: name, ok: true})
			continue
		}
		sink(Value[T]{raw: raw})
	}
}
