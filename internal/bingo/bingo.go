// Package bingo implements a cage that hands out shuffled items one at a
// time until it runs dry.
package bingo

import (
	"errors"
	"math/rand/v2"
	"slices"
)

// ErrEmpty is returned when picking from a cage with no items left.
var ErrEmpty = errors.New("pick from empty bingo cage")

// Cage holds items in a random order
type Cage[T any] struct {
	items []T
}

// New copies items into a cage and shuffles them with rng
func New[T any](items []T, rng *rand.Rand) *Cage[T] {
	c := &Cage[T]{items: slices.Clone(items)}
	rng.Shuffle(len(c.items), func(i, j int) {
		c.items[i], c.items[j] = c.items[j], c.items[i]
	})
	return c
}

// Pick removes and returns one item
func (c *Cage[T]) Pick() (T, error) {
	item, ok := pop(&c.items)
	if !ok {
		return item, ErrEmpty
	}
	return item, nil
}

// Call picks an item. It lets the cage be handed around as a func() (T, error).
func (c *Cage[T]) Call() (T, error) {
	return c.Pick()
}

// Len returns the number of items left
func (c *Cage[T]) Len() int {
	return len(c.items)
}

func pop[T any](s *[]T) (T, bool) {
	var zero T
	n := len(*s)
	if n == 0 {
		return zero, false
	}
	item := (*s)[n-1]
	*s = (*s)[:n-1]
	return item, true
}
