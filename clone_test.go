package funtup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// tally is a stateful struct-valued callable used to observe copy
// independence.
type tally struct {
	total int
}

func (c *tally) add(n int) int {
	c.total += n
	return c.total
}

func TestCopyOf_IndependentState(t *testing.T) {
	t.Parallel()

	orig := tally{}
	cp := CopyOf(orig)

	require.Equal(t, 5, orig.add(5))
	require.Equal(t, 10, orig.add(5))

	// The copy starts from the state at copy time and is unaffected by
	// mutation of the original afterward.
	require.Equal(t, 5, cp.add(5))
	require.Equal(t, 15, orig.add(5))
	require.Equal(t, 10, cp.add(5))
}

func TestCopyOf_SameResultsForSameArguments(t *testing.T) {
	t.Parallel()

	double := F1(func(a int) int { return a * 2 })
	cp := CopyOf(double)

	for _, x := range []int{0, 1, -4, 21} {
		require.Equal(t, double(x), cp(x))
	}
}

func TestCopyOf_GivesBatteryPrivateState(t *testing.T) {
	t.Parallel()

	counter := tally{total: 100}

	// The battery owns a private copy; the caller's counter is untouched.
	owned := CopyOf(counter)
	b := Battery(F1(owned.add), F1(func(n int) int { return -n }))

	require.Equal(t, T(101, -1), b(1))
	require.Equal(t, T(102, -2), b(2))
	require.Equal(t, 100, counter.total)
}
