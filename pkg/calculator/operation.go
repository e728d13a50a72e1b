package calculator

import (
	"fmt"
	"strings"
)

// Operation names one of the four arithmetic operations.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

var operationAliases = map[string]Operation{
	"add":      OpAdd,
	"+":        OpAdd,
	"plus":     OpAdd,
	"subtract": OpSubtract,
	"sub":      OpSubtract,
	"-":        OpSubtract,
	"minus":    OpSubtract,
	"multiply": OpMultiply,
	"mul":      OpMultiply,
	"*":        OpMultiply,
	"x":        OpMultiply,
	"times":    OpMultiply,
	"divide":   OpDivide,
	"div":      OpDivide,
	"/":        OpDivide,
}

// Operations returns all supported operations in canonical order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// Symbol returns the infix symbol for the operation, or "?" if unknown.
func (op Operation) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return "?"
}

// ParseOperation resolves a name or symbol such as "add", "mul" or "/".
// Matching ignores case and surrounding whitespace.
func ParseOperation(s string) (Operation, error) {
	op, ok := operationAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
	return op, nil
}

// Apply runs op over a and b. Add, subtract and multiply keep their exact
// integer result; only divide produces a quotient.
func Apply(op Operation, a, b int) (Result, error) {
	switch op {
	case OpAdd:
		return IntegerResult(Add(a, b)), nil
	case OpSubtract:
		return IntegerResult(Subtract(a, b)), nil
	case OpMultiply:
		return IntegerResult(Multiply(a, b)), nil
	case OpDivide:
		q, err := Divide(a, b)
		if err != nil {
			return Result{}, err
		}
		return QuotientResult(q), nil
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
}

// Apply runs op over a and b.
func (c *Calculator) Apply(op Operation, a, b int) (Result, error) {
	return Apply(op, a, b)
}
