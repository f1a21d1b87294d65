// Package operator exposes Go's operators as ordinary functions so they can
// be passed to higher-order helpers, plus reflective getters for items,
// struct fields and methods.
package operator

import (
	"cmp"
	"math"
	"reflect"
)

// Integer is the set of integer types
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Real is the set of numeric types supporting the arithmetic operators
type Real interface {
	Integer | ~float32 | ~float64
}

// Signed is the set of numeric types that can be negated
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

func Add[T Real](a, b T) T { return a + b }
func Sub[T Real](a, b T) T { return a - b }
func Mul[T Real](a, b T) T { return a * b }
func Neg[T Signed](a T) T  { return -a }

// Mod returns the remainder with the sign of b
func Mod[T Integer](a, b T) T {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// FloorDiv divides and rounds toward negative infinity
func FloorDiv[T Integer](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// TrueDiv always divides in floating point
func TrueDiv[T Real](a, b T) float64 {
	return float64(a) / float64(b)
}

func Pow(a, b float64) float64 { return math.Pow(a, b) }

func Abs[T Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

func Eq[T comparable](a, b T) bool   { return a == b }
func Ne[T comparable](a, b T) bool   { return a != b }
func Lt[T cmp.Ordered](a, b T) bool { return a < b }
func Le[T cmp.Ordered](a, b T) bool { return a <= b }
func Gt[T cmp.Ordered](a, b T) bool { return a > b }
func Ge[T cmp.Ordered](a, b T) bool { return a >= b }

// Truth reports whether v is anything other than its type's zero value.
// Nil and empty slices, maps and strings are false.
func Truth(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.String, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	}
	return !rv.IsZero()
}

func Not(v any) bool { return !Truth(v) }
