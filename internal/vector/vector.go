// Package vector implements a small two-dimensional vector with
// elementwise addition, scalar multiplication and a Euclidean magnitude.
package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vector is an immutable 2D value
type Vector struct {
	X, Y float64
}

// New returns the vector (x, y)
func New(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the elementwise sum v + o
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Mul returns v scaled by k
func (v Vector) Mul(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Abs returns the magnitude of v
func (v Vector) Abs() float64 {
	return math.Hypot(v.X, v.Y)
}

// Bool is false only for the zero vector
func (v Vector) Bool() bool {
	return v.X != 0 || v.Y != 0
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%s, %s)", formatComponent(v.X), formatComponent(v.Y))
}

func formatComponent(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Parse reads a vector written as "x,y"
func Parse(s string) (Vector, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Vector{}, fmt.Errorf("invalid vector %q: expected x,y", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Vector{}, fmt.Errorf("invalid x component in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Vector{}, fmt.Errorf("invalid y component in %q: %w", s, err)
	}

	return New(x, y), nil
}
