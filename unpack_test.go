package funtup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func divmodFn() Fn {
	return F2(func(a, b int) Tuple { return T(a/b, a%b) })
}

func TestAutoUnpack_TupleArgumentIsSpread(t *testing.T) {
	t.Parallel()

	add := F2(func(a, b int) int { return a + b })
	au := AutoUnpack(add)

	require.Equal(t, 5, au(T(2, 3)), "single Tuple argument is unpacked")
	require.Equal(t, 5, au(2, 3), "positional arguments are forwarded unchanged")
	require.Equal(t, add(2, 3), au(2, 3))
}

func TestAutoUnpack_NonTupleSingleArgumentForwards(t *testing.T) {
	t.Parallel()

	double := F1(func(a int) int { return a * 2 })
	au := AutoUnpack(double)

	require.Equal(t, 10, au(5), "a lone non-Tuple argument takes the forwarding path")
}

func TestAutoUnpack_DivmodScenario(t *testing.T) {
	t.Parallel()

	divmod := divmodFn()
	require.Equal(t, T(2, 1), divmod(5, 2))

	add := F2(func(a, b int) int { return a + b })
	c := Compose(divmod, AutoUnpack(add))
	require.Equal(t, 3, c(5, 2), "quotient 2 + remainder 1")
}

func TestAutoUnpack_PanicsOnNil(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "funtup: AutoUnpack: callable is nil", func() {
		AutoUnpack(nil)
	})
}

func TestUnpackTyped(t *testing.T) {
	t.Parallel()

	add2 := func(a, b int) int { return a + b }
	add3 := func(a, b, c int) int { return a + b + c }
	join4 := func(a, b, c, d string) string { return a + b + c + d }

	require.Equal(t, 7, Unpack2(add2)(T2(5, 2)))
	require.Equal(t, 6, Unpack3(add3)(T3(1, 2, 3)))
	require.Equal(t, "abcd", Unpack4(join4)(T4("a", "b", "c", "d")))
}

func TestUnpackTyped_InComposeChain(t *testing.T) {
	t.Parallel()

	divmod := func(p Tuple2[int, int]) Tuple2[int, int] {
		return T2(p.V1/p.V2, p.V1%p.V2)
	}
	add := func(a, b int) int { return a + b }

	c := Compose2(divmod, Unpack2(add))
	require.Equal(t, 3, c(T2(5, 2)))
}
