package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
)

// NewCalculationResponse builds a response for a finished operation.
// A non-nil err produces an error response without a result.
func NewCalculationResponse(op calculator.Operation, a, b int, result calculator.Result, err error) CalculationResponse {
	resp := CalculationResponse{
		Status:    "success",
		Operation: string(op),
		A:         a,
		B:         b,
		Context: CalcContext{
			Timestamp: time.Now(),
			Operation: string(op),
			Status:    "success",
		},
	}

	if err != nil {
		resp.Status = "error"
		resp.Context.Status = "error"
		resp.Context.ErrorMessage = err.Error()
		resp.Context.Summary = fmt.Sprintf("%d %s %d failed: %v", a, op.Symbol(), b, err)
		return resp
	}

	resp.Result = json.Number(result.String())
	resp.Context.Summary = fmt.Sprintf("%d %s %d = %s", a, op.Symbol(), b, result)
	return resp
}
