package funtup

import "fmt"

// Lift constructors adapt ordinary Go functions into the boxed Fn form.
//
// F0..F4 lift value-returning functions; P0..P4 lift procedures, whose
// boxed form returns Void{} so the outcome is still storable in a result
// aggregate. The choice between "store the result" and "store the
// sentinel" is made here, by the declared signature, not at call time.
//
// The boxed form checks the argument count on every call and panics on a
// mismatch; argument types are checked by the type assertions, which
// likewise panic when they fail. The combinators themselves never recover
// these panics.

func mustArity(want int, args []any) {
	if len(args) != want {
		panic(fmt.Sprintf("funtup: callable expects %d argument(s), got %d", want, len(args)))
	}
}

// F0 lifts a nullary function.
func F0[R any](f func() R) Fn {
	return func(args ...any) any {
		mustArity(0, args)
		return f()
	}
}

// F1 lifts a unary function.
func F1[A, R any](f func(A) R) Fn {
	return func(args ...any) any {
		mustArity(1, args)
		return f(args[0].(A))
	}
}

// F2 lifts a binary function.
func F2[A, B, R any](f func(A, B) R) Fn {
	return func(args ...any) any {
		mustArity(2, args)
		return f(args[0].(A), args[1].(B))
	}
}

// F3 lifts a ternary function.
func F3[A, B, C, R any](f func(A, B, C) R) Fn {
	return func(args ...any) any {
		mustArity(3, args)
		return f(args[0].(A), args[1].(B), args[2].(C))
	}
}

// F4 lifts a four-argument function.
func F4[A, B, C, D, R any](f func(A, B, C, D) R) Fn {
	return func(args ...any) any {
		mustArity(4, args)
		return f(args[0].(A), args[1].(B), args[2].(C), args[3].(D))
	}
}

// P0 lifts a nullary procedure; the boxed form returns Void{}.
func P0(f func()) Fn {
	return func(args ...any) any {
		mustArity(0, args)
		f()
		return Void{}
	}
}

// P1 lifts a unary procedure; the boxed form returns Void{}.
func P1[A any](f func(A)) Fn {
	return func(args ...any) any {
		mustArity(1, args)
		f(args[0].(A))
		return Void{}
	}
}

// P2 lifts a binary procedure; the boxed form returns Void{}.
func P2[A, B any](f func(A, B)) Fn {
	return func(args ...any) any {
		mustArity(2, args)
		f(args[0].(A), args[1].(B))
		return Void{}
	}
}

// P3 lifts a ternary procedure; the boxed form returns Void{}.
func P3[A, B, C any](f func(A, B, C)) Fn {
	return func(args ...any) any {
		mustArity(3, args)
		f(args[0].(A), args[1].(B), args[2].(C))
		return Void{}
	}
}

// P4 lifts a four-argument procedure; the boxed form returns Void{}.
func P4[A, B, C, D any](f func(A, B, C, D)) Fn {
	return func(args ...any) any {
		mustArity(4, args)
		f(args[0].(A), args[1].(B), args[2].(C), args[3].(D))
		return Void{}
	}
}
