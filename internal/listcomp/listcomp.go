// Package listcomp contrasts explicit loops with their map, filter and
// lazy-sequence equivalents.
package listcomp

import (
	"iter"
	"slices"

	"github.com/samber/lo"
)

// Symbols is a handful of currency signs, mostly outside ASCII
const Symbols = "$¢£¥€¤"

// Pair is one element of a cartesian product
type Pair[A, B any] struct {
	First  A
	Second B
}

// CodesLoop collects the code points of s with a plain loop
func CodesLoop(s string) []int {
	var codes []int
	for _, r := range s {
		codes = append(codes, int(r))
	}
	return codes
}

// Codes collects the code points of s with a map
func Codes(s string) []int {
	return lo.Map([]rune(s), func(r rune, _ int) int {
		return int(r)
	})
}

// CodesAbove returns the code points of s greater than limit
func CodesAbove(s string, limit int) []int {
	return lo.FilterMap([]rune(s), func(r rune, _ int) (int, bool) {
		return int(r), int(r) > limit
	})
}

// Product returns every (a, b) pair, iterating bs fastest
func Product[A, B any](as []A, bs []B) []Pair[A, B] {
	pairs := make([]Pair[A, B], 0, len(as)*len(bs))
	for _, a := range as {
		for _, b := range bs {
			pairs = append(pairs, Pair[A, B]{First: a, Second: b})
		}
	}
	return pairs
}

var (
	Colors = []string{"black", "white"}
	Sizes  = []string{"S", "M", "L"}
)

// TShirts lists every color and size combination
func TShirts() []Pair[string, string] {
	return Product(Colors, Sizes)
}

// CodePoints lazily yields the code points of s
func CodePoints(s string) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for _, r := range s {
			if !yield(uint32(r)) {
				return
			}
		}
	}
}

// Array drains seq into a slice
func Array(seq iter.Seq[uint32]) []uint32 {
	return slices.Collect(seq)
}
