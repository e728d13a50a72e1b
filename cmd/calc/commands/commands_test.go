package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/types"
)

func runCalc(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CALC_LOG_FILE", "")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--env", filepath.Join(t.TempDir(), "none.env")}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestArithmeticCommands(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"add", "2", "3"}, "5\n"},
		{[]string{"subtract", "4", "2"}, "2\n"},
		{[]string{"multiply", "3", "4"}, "12\n"},
		{[]string{"divide", "8", "2"}, "4\n"},
		{[]string{"divide", "7", "2"}, "3.5\n"},
		{[]string{"subtract", "4", "-2"}, "6\n"},
		{[]string{"add", "--", "-2", "3"}, "1\n"},
		{[]string{"add", "9007199254740993", "0"}, "9007199254740993\n"},
		{[]string{"subtract", "9007199254740993", "0"}, "9007199254740993\n"},
		{[]string{"multiply", "3037000499", "3037000499"}, "9223372030926249001\n"},
	}

	for _, tc := range cases {
		out, err := runCalc(t, tc.args...)
		require.NoError(t, err, "calc %v", tc.args)
		assert.Equal(t, tc.want, out, "calc %v", tc.args)
	}
}

func TestEvalCommand(t *testing.T) {
	out, err := runCalc(t, "eval", "8", "/", "2")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, err = runCalc(t, "eval", "3", "mul", "4")
	require.NoError(t, err)
	assert.Equal(t, "12\n", out)

	_, err = runCalc(t, "eval", "3", "pow", "4")
	assert.ErrorIs(t, err, calculator.ErrUnknownOperation)
}

func TestDivideByZeroCommand(t *testing.T) {
	out, err := runCalc(t, "divide", "8", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, calculator.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "Cannot divide by zero")
	assert.Empty(t, out)
}

func TestInvalidOperand(t *testing.T) {
	_, err := runCalc(t, "add", "two", "3")
	assert.ErrorIs(t, err, calculator.ErrInvalidArgument)

	_, err = runCalc(t, "add", "2")
	assert.Error(t, err)
}

func TestJSONOutput(t *testing.T) {
	out, err := runCalc(t, "--json", "divide", "8", "2")
	require.NoError(t, err)

	var resp types.CalculationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "divide", resp.Operation)
	assert.Equal(t, 8, resp.A)
	assert.Equal(t, 2, resp.B)
	assert.Equal(t, json.Number("4"), resp.Result)
	assert.Equal(t, "8 / 2 = 4", resp.Context.Summary)

	out, err = runCalc(t, "--json", "add", "9007199254740993", "0")
	require.NoError(t, err)
	assert.Contains(t, out, `"result": 9007199254740993`)
	assert.Contains(t, out, `"summary": "9007199254740993 + 0 = 9007199254740993"`)
}

func TestJSONErrorOutput(t *testing.T) {
	out, err := runCalc(t, "--json", "divide", "8", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, calculator.ErrInvalidArgument)

	var resp types.CalculationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "error", resp.Context.Status)
	assert.Equal(t, "divide", resp.Operation)
	assert.Contains(t, resp.Context.ErrorMessage, "Cannot divide by zero")
	assert.Equal(t, "8 / 0 failed: invalid argument: Cannot divide by zero", resp.Context.Summary)
	assert.Empty(t, resp.Result)
	assert.NotContains(t, out, `"result"`)
}
