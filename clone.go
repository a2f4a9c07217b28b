package funtup

// CopyOf returns an independent value copy of v.
//
// It is useful when a combinator should take exclusive ownership of a
// stateful callable that also exists elsewhere: hand the combinator
// CopyOf(c) and later mutation of the original no longer reaches the
// combinator's private copy.
//
// The copy has value semantics, so the callable must carry its state in the
// value itself (a struct-valued callable). Callers holding a pointer
// dereference it first: CopyOf(*p). Closures share their captured variables
// and cannot be separated by copying; carry closure state in a struct when
// copy independence matters.
func CopyOf[T any](v T) T {
	return v
}
