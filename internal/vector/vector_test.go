package vector_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/idioms/internal/vector"
)

func TestAdd(t *testing.T) {
	v := vector.New(2, 4).Add(vector.New(2, 1))
	assert.Equal(t, vector.New(4, 5), v)
	assert.Equal(t, "Vector(4, 5)", v.String())
}

func TestAbs(t *testing.T) {
	v := vector.New(3, 4)
	assert.Equal(t, 5.0, v.Abs())
	assert.Equal(t, 15.0, v.Mul(3).Abs())
}

func TestMul(t *testing.T) {
	assert.Equal(t, "Vector(9, 12)", vector.New(3, 4).Mul(3).String())
	assert.Equal(t, "Vector(1.5, -2)", vector.New(3, -4).Mul(0.5).String())
}

func TestBool(t *testing.T) {
	assert.False(t, vector.Vector{}.Bool())
	assert.True(t, vector.New(0, 1).Bool())
	assert.True(t, vector.New(-1, 0).Bool())
}

func TestParse(t *testing.T) {
	v, err := vector.Parse(" 3, 4")
	require.NoError(t, err)
	assert.Equal(t, vector.New(3, 4), v)

	_, err = vector.Parse("3")
	assert.Error(t, err)

	_, err = vector.Parse("3,y")
	assert.Error(t, err)
}

func ExampleVector_Add() {
	v1 := vector.New(2, 4)
	v2 := vector.New(2, 1)
	fmt.Println(v1.Add(v2))
	fmt.Println(vector.New(3, 4).Abs())
	fmt.Println(vector.New(3, 4).Mul(3))
	// Output:
	// Vector(4, 5)
	// 5
	// Vector(9, 12)
}
