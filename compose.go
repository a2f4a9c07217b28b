package funtup

import "fmt"

// mustStages validates the callable list handed to a variadic combinator.
// Misuse panics at construction time, before any invocation happens.
func mustStages(op string, fns []Fn) {
	if len(fns) == 0 {
		panic("funtup: " + op + " needs at least one callable")
	}
	for i, f := range fns {
		if f == nil {
			panic(fmt.Sprintf("funtup: %s: callable %d is nil", op, i))
		}
	}
}

// ownStages copies the callable list so the combinator owns it exclusively;
// later mutation of the caller's slice must not reach the combinator.
func ownStages(fns []Fn) []Fn {
	owned := make([]Fn, len(fns))
	copy(owned, fns)
	return owned
}

// Compose chains the given callables into a single callable.
//
// Compose(c0, c1, ..., cn)(args...) evaluates as cn(...c1(c0(args...))...):
// c0 receives the original argument list, every later stage receives exactly
// the previous stage's result as its sole argument, and the overall result
// is the last stage's result. With a single callable the composition is that
// callable itself.
//
//	c1 := funtup.Compose(add3, mul3)
//	c2 := funtup.Compose(mul3, add3)
//	c1(2) // 15
//	c2(2) // 9
//
// Compose copies the callable list at construction. It panics if fns is
// empty or contains a nil callable. The composed callable may be re-invoked
// any number of times; invocations share no state beyond whatever the owned
// callables themselves retain.
func Compose(fns ...Fn) Fn {
	mustStages("Compose", fns)
	owned := ownStages(fns)
	if len(owned) == 1 {
		return owned[0]
	}
	return func(args ...any) any {
		out := owned[0](args...)
		for _, f := range owned[1:] {
			out = f(out)
		}
		return out
	}
}

// ComposeRight is Compose with the conventional mathematical argument
// order: ComposeRight(f, g)(x) evaluates f(g(x)), so the last callable in
// the list is applied first.
func ComposeRight(fns ...Fn) Fn {
	mustStages("ComposeRight", fns)
	owned := ownStages(fns)
	for i, j := 0, len(owned)-1; i < j; i, j = i+1, j-1 {
		owned[i], owned[j] = owned[j], owned[i]
	}
	return Compose(owned...)
}

// Typed fixed-arity compositions. Stage results must exactly match the next
// stage's parameter type; mismatches are compile errors.

// Compose2 chains two typed callables: Compose2(f, g)(x) == g(f(x)).
func Compose2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// Compose3 chains three typed callables.
func Compose3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D { return h(g(f(a))) }
}

// Compose4 chains four typed callables.
func Compose4[A, B, C, D, E any](
	f func(A) B, g func(B) C, h func(C) D, k func(D) E,
) func(A) E {
	return func(a A) E { return k(h(g(f(a)))) }
}

// Compose5 chains five typed callables.
func Compose5[A, B, C, D, E, F any](
	f func(A) B, g func(B) C, h func(C) D, k func(D) E, l func(E) F,
) func(A) F {
	return func(a A) F { return l(k(h(g(f(a))))) }
}
