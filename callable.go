package funtup

// Fn is the boxed callable form: a function invoked with a positional
// argument list, returning a single result value.
//
// Fn is to funtup what a plain function is to the caller: every combinator
// both consumes and produces Fn values, so combinators nest without any
// special casing. Ordinary Go functions are adapted into Fn via the lift
// constructors (F0..F4, P0..P4); writing an Fn by hand is also fine, for
// example when the arity is not known statically.
//
// An Fn that has nothing to return should return Void{} (which the P* lifts
// do automatically). Invoke additionally maps an untyped nil result to
// Void{} for hand-written callables.
type Fn func(args ...any) any

// Void is the storable stand-in for "no result".
//
// It carries no state; all Void values compare equal. Batteries use it to
// fill the result slot of a member that only performs a side effect.
type Void struct{}

// Apply invokes f with args and returns its natural result, without any
// void normalization.
func Apply(f Fn, args ...any) any {
	return f(args...)
}

// Invoke invokes f with args and always returns a storable value: if the
// callable returns an untyped nil, the result is normalized to Void{}.
//
// Aggregate-valued results (as produced by batteries) need every slot to
// hold a concrete value, which is why battery members are invoked through
// Invoke rather than Apply.
func Invoke(f Fn, args ...any) any {
	out := f(args...)
	if out == nil {
		return Void{}
	}
	return out
}
