package calculator

import (
	"strconv"
)

// Result is the outcome of Apply. Integer results stay exact; quotients from
// divide are float64.
type Result struct {
	integer    int
	quotient   float64
	isQuotient bool
}

// IntegerResult wraps an exact integer result.
func IntegerResult(n int) Result {
	return Result{integer: n}
}

// QuotientResult wraps a divide result.
func QuotientResult(q float64) Result {
	return Result{quotient: q, isQuotient: true}
}

// IsQuotient reports whether the result came from divide.
func (r Result) IsQuotient() bool {
	return r.isQuotient
}

// Int returns the integer result, truncating a quotient toward zero.
func (r Result) Int() int {
	if r.isQuotient {
		return int(r.quotient)
	}
	return r.integer
}

// Float64 returns the result as a float64. Integers above 2^53 lose precision.
func (r Result) Float64() float64 {
	if r.isQuotient {
		return r.quotient
	}
	return float64(r.integer)
}

// String renders the exact digits of an integer result, and a quotient
// without trailing zeros, so 4.0 prints as "4".
func (r Result) String() string {
	if r.isQuotient {
		return strconv.FormatFloat(r.quotient, 'f', -1, 64)
	}
	return strconv.Itoa(r.integer)
}
