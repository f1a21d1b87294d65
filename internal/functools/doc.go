// Package functools collects helpers for working with functions as values:
// folding a slice with Reduce or Fold, sorting by a key function, partial
// application with Bind, composition, and runtime inspection of a
// function's signature.
//
// The helpers are generic and allocate only what they return. None of them
// mutate their inputs.
package functools
