package funtup

// Battery groups the given callables into a single callable that fans its
// argument list out to every member.
//
// Battery(c0, ..., cn)(args...) invokes every member with the same args and
// returns a Tuple (as `any`, like every Fn result) whose slot i holds the
// outcome of ci. Members are invoked through Invoke, so a member that
// produces no result fills its slot with Void{}.
//
//	add := funtup.F2(func(a, b int) int { return a + b })
//	mul := funtup.F2(func(a, b int) int { return a * b })
//	b := funtup.Battery(add, mul)
//	b(3, 4) // Tuple{7, 12}
//
// The order in which the members are actually called is unspecified; only
// the mapping of result slots to declaration order is guaranteed. If the
// members mutate a shared argument, the intermediate states they observe
// are therefore undefined. Batteries are intended for side-effect-free or
// independent-effect callables.
//
// Battery copies the callable list at construction and panics if fns is
// empty or contains a nil callable.
func Battery(fns ...Fn) Fn {
	mustStages("Battery", fns)
	owned := ownStages(fns)
	return func(args ...any) any {
		return ApplyTuple(owned, args...)
	}
}

// Typed fixed-arity batteries over a single shared argument. Wider argument
// lists go through the boxed Battery via the F* lifts.

// Battery2 fans one argument out to two typed callables.
func Battery2[A, R1, R2 any](f func(A) R1, g func(A) R2) func(A) Tuple2[R1, R2] {
	return func(a A) Tuple2[R1, R2] { return T2(f(a), g(a)) }
}

// Battery3 fans one argument out to three typed callables.
func Battery3[A, R1, R2, R3 any](
	f func(A) R1, g func(A) R2, h func(A) R3,
) func(A) Tuple3[R1, R2, R3] {
	return func(a A) Tuple3[R1, R2, R3] { return T3(f(a), g(a), h(a)) }
}

// Battery4 fans one argument out to four typed callables.
func Battery4[A, R1, R2, R3, R4 any](
	f func(A) R1, g func(A) R2, h func(A) R3, k func(A) R4,
) func(A) Tuple4[R1, R2, R3, R4] {
	return func(a A) Tuple4[R1, R2, R3, R4] { return T4(f(a), g(a), h(a), k(a)) }
}
