package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdd tests the Add function.
func TestAdd(t *testing.T) {
	assert.Equal(t, 5, Add(2, 3))

	cases := []struct {
		a, b, want int
	}{
		{0, 0, 0},
		{-1, 1, 0},
		{10, 5, 15},
		{-7, -8, -15},
	}

	for _, tc := range cases {
		got := Add(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("Add(%d, %d) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestAddWrapsOnOverflow(t *testing.T) {
	assert.Equal(t, math.MinInt, Add(math.MaxInt, 1))
}

// TestSubtract tests the Subtract function.
func TestSubtract(t *testing.T) {
	assert.Equal(t, 2, Subtract(4, 2))

	cases := []struct {
		a, b, want int
	}{
		{5, 5, 0},
		{3, 10, -7},
		{-3, -3, 0},
		{0, 9, -9},
	}

	for _, tc := range cases {
		got := Subtract(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("Subtract(%d, %d) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestMultiply tests the Multiply function.
func TestMultiply(t *testing.T) {
	assert.Equal(t, 12, Multiply(3, 4))

	cases := []struct {
		a, b, want int
	}{
		{0, 5, 0},
		{1, 1, 1},
		{2, 3, 6},
		{-2, 3, -6},
		{-2, -3, 6},
	}

	for _, tc := range cases {
		got := Multiply(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("Multiply(%d, %d) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestDivide tests the Divide function.
func TestDivide(t *testing.T) {
	result, err := Divide(8, 2)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, result, 0.001)

	cases := []struct {
		name string
		a, b int
		want float64
	}{
		{"exact", 9, 3, 3},
		{"fractional", 10, 4, 2.5},
		{"non-truncating", 1, 3, 0.3333},
		{"negative divisor", 10, -2, -5},
		{"negative dividend", -7, 2, -3.5},
		{"zero dividend", 0, 5, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Divide(tc.a, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 0.001)
		})
	}
}

func TestDivideByZero(t *testing.T) {
	for _, a := range []int{8, 0, -1, math.MaxInt} {
		result, err := Divide(a, 0)
		require.Error(t, err, "Divide(%d, 0)", a)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Contains(t, err.Error(), "Cannot divide by zero")
		assert.Zero(t, result)
	}
}

func TestCalculatorMethods(t *testing.T) {
	c := New()

	assert.Equal(t, 5, c.Add(2, 3))
	assert.Equal(t, 2, c.Subtract(4, 2))
	assert.Equal(t, 12, c.Multiply(3, 4))

	got, err := c.Divide(8, 2)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, 0.001)

	_, err = c.Divide(8, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var zero Calculator
	assert.Equal(t, 7, zero.Add(3, 4))
}
