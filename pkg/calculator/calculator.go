// Package calculator provides basic arithmetic operations.
package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an argument violates a precondition,
	// such as a zero divisor.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownOperation is returned by ParseOperation for unrecognized names.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Calculator performs elementary arithmetic. It holds no state, so the zero
// value is ready to use and safe for concurrent use.
type Calculator struct{}

// New returns a Calculator.
func New() *Calculator {
	return &Calculator{}
}

// Add returns the sum of two integers.
func (c *Calculator) Add(a, b int) int {
	return Add(a, b)
}

// Subtract returns the difference between two integers.
func (c *Calculator) Subtract(a, b int) int {
	return Subtract(a, b)
}

// Multiply returns the product of two integers.
func (c *Calculator) Multiply(a, b int) int {
	return Multiply(a, b)
}

// Divide returns the quotient of two integers.
func (c *Calculator) Divide(a, b int) (float64, error) {
	return Divide(a, b)
}

// Add returns the sum of two integers. Overflow wraps around.
func Add(a, b int) int {
	return a + b
}

// Subtract returns the difference between two integers.
func Subtract(a, b int) int {
	return a - b
}

// Multiply returns the product of two integers.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns a / b without truncation.
// If b is 0, it returns an error wrapping ErrInvalidArgument.
func Divide(a, b int) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: Cannot divide by zero", ErrInvalidArgument)
	}
	return float64(a) / float64(b), nil
}
