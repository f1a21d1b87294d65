package functools_test

import (
	"math/big"
	"reflect"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/idioms/internal/deck"
	"github.com/arcanaland/idioms/internal/functools"
	"github.com/arcanaland/idioms/internal/operator"
)

const factorial42 = "1405006117752879898543142606244511569936384000000000"

func factorials(ns []int) []int64 {
	return lo.Map(ns, func(n int, _ int) int64 {
		return functools.Factorial(n).Int64()
	})
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, factorial42, functools.Factorial(42).String())

	fact := functools.Factorial
	assert.Equal(t, int64(120), fact(5).Int64())

	assert.Equal(t,
		[]int64{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800},
		factorials(lo.Range(11)))
}

func TestFactorialReduce(t *testing.T) {
	assert.Equal(t, factorial42, functools.FactorialReduce(42).String())
	assert.Equal(t, 0, functools.FactorialReduce(0).Cmp(big.NewInt(1)))
	assert.Equal(t, 0, functools.FactorialReduce(-3).Cmp(big.NewInt(1)))

	// Folding with an anonymous function and with the named operator agree.
	ugly, err := functools.Reduce(lo.RangeFrom(1, 10), func(a, b int) int { return a * b })
	require.NoError(t, err)
	named, err := functools.Reduce(lo.RangeFrom(1, 10), operator.Mul[int])
	require.NoError(t, err)
	assert.Equal(t, ugly, named)
	assert.Equal(t, functools.Factorial(10).Int64(), int64(named))
}

func TestSortedBy(t *testing.T) {
	fruits := []string{"strawberry", "fig", "apple", "cherry", "raspberry", "banana"}

	assert.Equal(t,
		[]string{"fig", "apple", "cherry", "banana", "raspberry", "strawberry"},
		functools.SortedBy(fruits, functools.Len))

	assert.Equal(t,
		[]string{"banana", "apple", "fig", "raspberry", "strawberry", "cherry"},
		functools.SortedBy(fruits, functools.Reverse))

	assert.Equal(t, "strawberry", fruits[0], "input must not be reordered")
}

func TestMapFilterVersusLoop(t *testing.T) {
	fact := func(n int) int64 { return functools.Factorial(n).Int64() }

	var loop []int64
	for n := range 6 {
		loop = append(loop, fact(n))
	}
	assert.Equal(t, []int64{1, 1, 2, 6, 24, 120}, loop)
	assert.Equal(t, loop, factorials(lo.Range(6)))

	odd := lo.Filter(lo.Range(6), func(n int, _ int) bool { return n%2 == 1 })
	assert.Equal(t, []int64{1, 6, 120}, factorials(odd))
}

func TestReduceAlternatives(t *testing.T) {
	total, err := functools.Reduce(lo.Range(100), operator.Add[int])
	require.NoError(t, err)
	assert.Equal(t, 4950, total)
	assert.Equal(t, 4950, functools.Sum(lo.Range(100)))

	assert.True(t, functools.All([]bool{true, true}))
	assert.False(t, functools.All([]bool{true, false}))
	assert.True(t, functools.All(nil))

	assert.True(t, functools.Any([]bool{true, false}))
	assert.False(t, functools.Any([]bool{false, false}))
}

func TestReduce_Empty(t *testing.T) {
	_, err := functools.Reduce([]int{}, operator.Add[int])
	assert.ErrorIs(t, err, functools.ErrEmptyReduce)

	assert.Equal(t, 7, functools.Fold([]int{}, 7, operator.Add[int]))
}

func TestBind(t *testing.T) {
	triple := functools.Bind(operator.Mul[int], 3)
	assert.Equal(t, 21, triple(7))

	tripled := lo.Map(lo.RangeFrom(1, 9), func(n int, _ int) int { return triple(n) })
	assert.Equal(t, []int{3, 6, 9, 12, 15, 18, 21, 24, 27}, tripled)
}

func TestCompose(t *testing.T) {
	shout := functools.Compose(strings.TrimSpace, strings.ToUpper)
	assert.Equal(t, "HI", shout("  hi "))
}

func TestCallable(t *testing.T) {
	assert.False(t, functools.Callable(true))
	assert.False(t, functools.Callable(nil))

	assert.True(t, functools.Callable(functools.Factorial))
	assert.True(t, functools.Callable(strings.ToUpper))
	assert.True(t, functools.Callable((*deck.Deck).Sorted))
	assert.True(t, functools.Callable(deck.New().Sorted))
	assert.True(t, functools.Callable(deck.New))
}

func TestInspect(t *testing.T) {
	sig, err := functools.Inspect(strings.Repeat)
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{reflect.TypeOf(""), reflect.TypeOf(0)}, sig.In)
	assert.Equal(t, []reflect.Type{reflect.TypeOf("")}, sig.Out)
	assert.False(t, sig.Variadic)
	assert.Equal(t, "func(string, int) string", sig.String())

	sig, err = functools.Inspect(strings.NewReplacer)
	require.NoError(t, err)
	assert.True(t, sig.Variadic)

	_, err = functools.Inspect(42)
	assert.ErrorIs(t, err, functools.ErrNotCallable)
}
