package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
	"github.com/sunfmin/mcp-go-calculator/pkg/types"
)

var shortHelp = map[calculator.Operation]string{
	calculator.OpAdd:      "Print A + B",
	calculator.OpSubtract: "Print A - B",
	calculator.OpMultiply: "Print A * B",
	calculator.OpDivide:   "Print A / B without truncation",
}

func arithmeticCmds(opts *options) []*cobra.Command {
	var cmds []*cobra.Command
	for _, op := range calculator.Operations() {
		cmd := &cobra.Command{
			Use:   string(op) + " A B",
			Short: shortHelp[op],
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, opts, op, args[0], args[1])
			},
		}
		cmd.Flags().SetInterspersed(false)
		cmds = append(cmds, cmd)
	}
	return cmds
}

func evalCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval A OP B",
		Short: "Apply OP (+ - * / or a name such as mul) to A and B",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := calculator.ParseOperation(args[1])
			if err != nil {
				return err
			}
			return run(cmd, opts, op, args[0], args[2])
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func run(cmd *cobra.Command, opts *options, op calculator.Operation, rawA, rawB string) error {
	a, err := parseOperand(rawA)
	if err != nil {
		return err
	}
	b, err := parseOperand(rawB)
	if err != nil {
		return err
	}

	logger.Debug("Calculating", "operation", op, "a", a, "b", b)

	result, err := calculator.Apply(op, a, b)
	if err != nil {
		logger.Debug("Calculation failed", "error", err)
	}

	out := cmd.OutOrStdout()
	if !opts.jsonOut {
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, result)
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(types.NewCalculationResponse(op, a, b, result, err)); encErr != nil {
		return encErr
	}
	return err
}

func parseOperand(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", calculator.ErrInvalidArgument, s)
	}
	return n, nil
}
