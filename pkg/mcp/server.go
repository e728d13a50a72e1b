package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/config"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
	"github.com/sunfmin/mcp-go-calculator/pkg/types"
)

// MCPCalculatorServer encapsulates the MCP server with calculator tools
type MCPCalculatorServer struct {
	server  *server.MCPServer
	calc    *calculator.Calculator
	name    string
	version string
}

// NewMCPCalculatorServer creates a new MCP server exposing the calculator.
// An empty name falls back to config.DefaultServerName.
func NewMCPCalculatorServer(name, version string) *MCPCalculatorServer {
	if name == "" {
		name = config.DefaultServerName
	}

	s := &MCPCalculatorServer{
		server:  server.NewMCPServer(name, version),
		calc:    calculator.New(),
		name:    name,
		version: version,
	}

	// Register all tools
	s.registerTools()

	return s
}

// Server returns the underlying MCP server
func (s *MCPCalculatorServer) Server() *server.MCPServer {
	return s.server
}

// registerTools registers all calculator tools
func (s *MCPCalculatorServer) registerTools() {
	s.addPingTool()
	s.addStatusTool()

	s.addArithmeticTool(calculator.OpAdd, "Add two integers", s.Add)
	s.addArithmeticTool(calculator.OpSubtract, "Subtract b from a", s.Subtract)
	s.addArithmeticTool(calculator.OpMultiply, "Multiply two integers", s.Multiply)
	s.addArithmeticTool(calculator.OpDivide, "Divide a by b without truncation; b must not be zero", s.Divide)

	s.addCalculateTool()
}

// addPingTool adds a simple ping tool for health checks
func (s *MCPCalculatorServer) addPingTool() {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Simple ping tool to test connection"),
	)

	s.server.AddTool(pingTool, s.Ping)
}

// addStatusTool adds the status tool
func (s *MCPCalculatorServer) addStatusTool() {
	statusTool := mcp.NewTool("status",
		mcp.WithDescription("Report server name, version and supported operations"),
	)

	s.server.AddTool(statusTool, s.Status)
}

// addArithmeticTool adds one of the two-operand tools
func (s *MCPCalculatorServer) addArithmeticTool(op calculator.Operation, description string, handler server.ToolHandlerFunc) {
	tool := mcp.NewTool(string(op),
		mcp.WithDescription(description),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First integer operand"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second integer operand"),
		),
	)

	s.server.AddTool(tool, handler)
}

// addCalculateTool adds the calculate tool, which takes the operation by name
func (s *MCPCalculatorServer) addCalculateTool() {
	calculateTool := mcp.NewTool("calculate",
		mcp.WithDescription("Apply an operation (add, subtract, multiply, divide or + - * /) to two integers"),
		mcp.WithString("operation",
			mcp.Required(),
			mcp.Description("Operation name or symbol"),
		),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First integer operand"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second integer operand"),
		),
	)

	s.server.AddTool(calculateTool, s.Calculate)
}

// newErrorResult creates a tool result that represents an error
func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf("Error: "+format, args...))
	result.IsError = true
	return result
}

// Ping handles the ping command
func (s *MCPCalculatorServer) Ping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received ping request")
	return mcp.NewToolResultText("pong - MCP Go Calculator is connected!"), nil
}

// Status handles the status command
func (s *MCPCalculatorServer) Status(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received status request")

	ops := calculator.Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}

	response := types.StatusResponse{
		Server: types.ServerInfo{
			Name:    s.name,
			Version: s.version,
		},
		Operations: names,
	}

	return newToolResultJSON(response)
}

// Add handles the add command
func (s *MCPCalculatorServer) Add(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.apply(calculator.OpAdd, request)
}

// Subtract handles the subtract command
func (s *MCPCalculatorServer) Subtract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.apply(calculator.OpSubtract, request)
}

// Multiply handles the multiply command
func (s *MCPCalculatorServer) Multiply(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.apply(calculator.OpMultiply, request)
}

// Divide handles the divide command
func (s *MCPCalculatorServer) Divide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.apply(calculator.OpDivide, request)
}

// Calculate handles the calculate command
func (s *MCPCalculatorServer) Calculate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received calculate request")

	name, ok := request.Params.Arguments["operation"].(string)
	if !ok {
		return newErrorResult("missing required string argument %q", "operation"), nil
	}

	op, err := calculator.ParseOperation(name)
	if err != nil {
		logger.Error("Failed to parse operation", "error", err, "operation", name)
		return newErrorResult("%v", err), nil
	}

	return s.apply(op, request)
}

// apply reads a and b from the request and runs op on them
func (s *MCPCalculatorServer) apply(op calculator.Operation, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received arithmetic request", "operation", op)

	a, err := intArgument(request.Params.Arguments, "a")
	if err != nil {
		return newErrorResult("%v", err), nil
	}
	b, err := intArgument(request.Params.Arguments, "b")
	if err != nil {
		return newErrorResult("%v", err), nil
	}

	result, err := s.calc.Apply(op, a, b)
	if err != nil {
		logger.Error("Failed to calculate", "error", err, "operation", op, "a", a, "b", b)
		return newErrorResultJSON(types.NewCalculationResponse(op, a, b, result, err)), nil
	}

	return newToolResultJSON(types.NewCalculationResponse(op, a, b, result, nil))
}

// intArgument extracts a whole-number argument. JSON numbers arrive as float64.
func intArgument(args map[string]interface{}, name string) (int, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%w: missing required argument %q", calculator.ErrInvalidArgument, name)
	}

	var value float64
	switch v := raw.(type) {
	case float64:
		value = v
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: argument %q must be an integer, got %s", calculator.ErrInvalidArgument, name, v)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: argument %q must be a number, got %T", calculator.ErrInvalidArgument, name, raw)
	}

	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, fmt.Errorf("%w: argument %q must be an integer, got %v", calculator.ErrInvalidArgument, name, value)
	}
	if value < math.MinInt64 || value >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: argument %q is out of range", calculator.ErrInvalidArgument, name)
	}
	return int(value), nil
}

// newErrorResultJSON creates an error tool result whose text is the JSON
// encoded error response
func newErrorResultJSON(data interface{}) *mcp.CallToolResult {
	result, _ := newToolResultJSON(data)
	result.IsError = true
	return result
}

func newToolResultJSON(data interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return newErrorResult("failed to serialize data: %v", err), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// ServeStdio runs the server over stdin/stdout until the input is closed
func (s *MCPCalculatorServer) ServeStdio() error {
	logger.Info("Starting MCP server...", "name", s.name, "version", s.version)
	return server.ServeStdio(s.server)
}
