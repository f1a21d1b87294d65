package functools

import (
	"errors"
	"math/big"

	"github.com/samber/lo"
)

// ErrEmptyReduce is returned by Reduce when there is nothing to fold and no
// initial value to fall back on.
var ErrEmptyReduce = errors.New("reduce of empty sequence with no initial value")

// Number is the set of types Sum accepts
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Fold applies f cumulatively from left to right, starting from init
func Fold[T, A any](items []T, init A, f func(A, T) A) A {
	return lo.Reduce(items, func(agg A, item T, _ int) A {
		return f(agg, item)
	}, init)
}

// Reduce folds items using the first element as the initial value
func Reduce[T any](items []T, f func(T, T) T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, ErrEmptyReduce
	}
	return Fold(items[1:], items[0], f), nil
}

// Sum adds up items
func Sum[T Number](items []T) T {
	return lo.Sum(items)
}

// All reports whether every value is true. It is true for an empty slice.
func All(values []bool) bool {
	return lo.EveryBy(values, func(b bool) bool { return b })
}

// Any reports whether at least one value is true
func Any(values []bool) bool {
	return lo.SomeBy(values, func(b bool) bool { return b })
}

// Factorial returns n! computed recursively. Values of n below 2 yield 1.
func Factorial(n int) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	return new(big.Int).Mul(big.NewInt(int64(n)), Factorial(n-1))
}

// FactorialReduce returns n! by folding multiplication over 1..n
func FactorialReduce(n int) *big.Int {
	factors := lo.Map(lo.RangeFrom(1, max(n, 0)), func(i int, _ int) *big.Int {
		return big.NewInt(int64(i))
	})

	product, err := Reduce(factors, func(a, b *big.Int) *big.Int {
		return new(big.Int).Mul(a, b)
	})
	if err != nil {
		return big.NewInt(1)
	}
	return product
}
