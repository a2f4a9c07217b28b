// Package funtup provides small combinators for building composite callables
// out of simpler callables: sequential pipelines, fan-out batteries, and a
// tuple auto-unpack adapter.
//
// Funtup is a pure in-process value library. There is no engine, no
// scheduler, and no I/O; a combinator built from callables is itself just a
// callable with the same call contract, so combinators nest freely (a
// battery member can be a pipeline, a pipeline stage can be a battery, an
// adapter can wrap either).
//
// # Core Concepts
//
// The library has two layers that mirror each other:
//
//  1. A boxed layer around Fn, the universal callable form. It supports any
//     arity and is what the variadic combinators (Compose, Battery,
//     AutoUnpack) operate on.
//  2. A typed layer of fixed-arity generic helpers (Compose2..Compose5,
//     Battery2..Battery4, Unpack2..Unpack4) where every contract is checked
//     by the compiler.
//
// Ordinary Go functions enter the boxed layer through the lift constructors
// F0..F4 (value-returning functions) and P0..P4 (procedures). A lifted
// procedure yields the sentinel Void value, so its outcome can still occupy
// a slot in an aggregate of results.
//
// # Compose
//
// Compose chains callables back to back: the first callable receives the
// original arguments, every later callable receives the previous result as
// its sole argument, and the overall result is the last callable's result.
//
//	add3 := funtup.F1(func(a int) int { return a + 3 })
//	mul3 := funtup.F1(func(a int) int { return a * 3 })
//
//	c1 := funtup.Compose(add3, mul3)
//	c2 := funtup.Compose(mul3, add3)
//	fmt.Println(c1(2)) // 15
//	fmt.Println(c2(2)) // 9
//
// # Battery
//
// Battery groups callables so that they can all be called with the same
// arguments; the results come back as a Tuple whose slot i holds the result
// of the i-th callable.
//
//	add := funtup.F2(func(a, b int) int { return a + b })
//	mul := funtup.F2(func(a, b int) int { return a * b })
//
//	b := funtup.Battery(add, mul)
//	r := b(3, 4).(funtup.Tuple)
//	fmt.Println(r.Get(0), r.Get(1)) // 7 12
//
// The order in which a battery calls its members is unspecified; only the
// positions of the results are guaranteed. Passing a shared mutable value to
// members that modify it is therefore risky; batteries are meant for
// side-effect-free or independent-effect callables.
//
// # AutoUnpack
//
// AutoUnpack bridges a stage that returns a Tuple into a stage that expects
// separate positional arguments. The wrapped callable is called with the
// tuple's elements when the adapter receives exactly one Tuple argument, and
// with the arguments unchanged otherwise.
//
//	divmod := funtup.F2(func(a, b int) funtup.Tuple {
//		return funtup.T(a/b, a%b)
//	})
//
//	c := funtup.Compose(divmod, funtup.AutoUnpack(add))
//	fmt.Println(c(5, 2)) // 3
//
// # Ownership
//
// Every combinator copies the callable list it is built from, so later
// mutation of the caller's slice has no effect on the combinator. CopyOf
// gives the same guarantee for stateful struct-valued callables: hand a
// combinator CopyOf(c) when it must own a private copy of c.
//
// # Errors
//
// The typed layer rejects mismatched chains at compile time. In the boxed
// layer, misuse (a nil callable, an empty combinator, a lift called with
// the wrong arity) panics at the point of construction or lifting. The
// combinators themselves add no error handling: a panic raised by a wrapped
// callable during invocation propagates unchanged to the caller.
package funtup
