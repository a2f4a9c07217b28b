package funtup

// AutoUnpack wraps f so that a single Tuple argument is automatically
// unpacked into a positional argument list.
//
// The dispatch rule, evaluated per call on the argument shape:
//
//   - invoked with exactly one argument that is a Tuple, the adapter calls
//     f with the tuple's elements as separate positional arguments;
//   - invoked with any other argument shape, the adapter forwards the
//     arguments to f unchanged.
//
// This bridges a stage that returns a Tuple into a stage expecting separate
// arguments, inside a Compose chain:
//
//	divmod := funtup.F2(func(a, b int) funtup.Tuple {
//		return funtup.T(a/b, a%b)
//	})
//	c := funtup.Compose(divmod, funtup.AutoUnpack(add))
//	c(5, 2) // 3
//
// AutoUnpack panics if f is nil.
func AutoUnpack(f Fn) Fn {
	if f == nil {
		panic("funtup: AutoUnpack: callable is nil")
	}
	return func(args ...any) any {
		if len(args) == 1 {
			if t, ok := args[0].(Tuple); ok {
				return f(t...)
			}
		}
		return f(args...)
	}
}

// Typed unpack adapters. Unlike AutoUnpack these have no forwarding path;
// the compiler guarantees the argument is the matching tuple type.

// Unpack2 adapts a two-argument callable to take a Tuple2 instead.
func Unpack2[A, B, R any](f func(A, B) R) func(Tuple2[A, B]) R {
	return func(t Tuple2[A, B]) R { return f(t.V1, t.V2) }
}

// Unpack3 adapts a three-argument callable to take a Tuple3 instead.
func Unpack3[A, B, C, R any](f func(A, B, C) R) func(Tuple3[A, B, C]) R {
	return func(t Tuple3[A, B, C]) R { return f(t.V1, t.V2, t.V3) }
}

// Unpack4 adapts a four-argument callable to take a Tuple4 instead.
func Unpack4[A, B, C, D, R any](f func(A, B, C, D) R) func(Tuple4[A, B, C, D]) R {
	return func(t Tuple4[A, B, C, D]) R { return f(t.V1, t.V2, t.V3, t.V4) }
}
