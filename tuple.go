package funtup

import "fmt"

// Tuple is the boxed fixed-size heterogeneous aggregate used by the
// variadic combinators: batteries collect their results into a Tuple, and
// AutoUnpack recognizes a single Tuple argument as a packed argument list.
//
// A Tuple is positional and immutable by convention; treat it as a value.
type Tuple []any

// T builds a Tuple from the given values, preserving order.
func T(values ...any) Tuple {
	t := make(Tuple, len(values))
	copy(t, values)
	return t
}

// Len returns the number of slots in the tuple.
func (t Tuple) Len() int { return len(t) }

// Get returns the value in slot i.
//
// It panics if i is out of range, consistent with positional access being a
// static contract in the typed layer.
func (t Tuple) Get(i int) any {
	if i < 0 || i >= len(t) {
		panic(fmt.Sprintf("funtup: tuple index %d out of range [0, %d)", i, len(t)))
	}
	return t[i]
}

// ApplyTuple applies every callable in fns to args and returns the ordered
// Tuple of results: slot i holds the outcome of fns[i], normalized through
// Invoke so that void members still occupy their slot.
//
// This is the primitive a Battery call builds on. This particular
// implementation calls the callables in the order they appear in fns, but
// callers must not rely on that: only the positions of the results are part
// of the contract.
func ApplyTuple(fns []Fn, args ...any) Tuple {
	out := make(Tuple, len(fns))
	for i, f := range fns {
		out[i] = Invoke(f, args...)
	}
	return out
}

// Typed fixed-arity tuples. These are the static counterpart of Tuple,
// used with the Unpack2..Unpack4 adapters and the typed batteries.

// Tuple2 is an ordered pair.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Tuple3 is an ordered triple.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Tuple4 is an ordered quadruple.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// T2 builds a Tuple2.
func T2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{V1: a, V2: b}
}

// T3 builds a Tuple3.
func T3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{V1: a, V2: b, V3: c}
}

// T4 builds a Tuple4.
func T4[A, B, C, D any](a A, b B, c C, d D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{V1: a, V2: b, V3: c, V4: d}
}

// Boxed returns the boxed Tuple form of t.
func (t Tuple2[A, B]) Boxed() Tuple { return T(t.V1, t.V2) }

// Boxed returns the boxed Tuple form of t.
func (t Tuple3[A, B, C]) Boxed() Tuple { return T(t.V1, t.V2, t.V3) }

// Boxed returns the boxed Tuple form of t.
func (t Tuple4[A, B, C, D]) Boxed() Tuple { return T(t.V1, t.V2, t.V3, t.V4) }
