// Package commands implements the calc command line.
//
//	calc add 2 3          # 5
//	calc divide 8 2       # 4
//	calc eval 7 / 2       # 3.5
//	calc --json multiply 3 4
//	calc serve            # MCP server on stdio
//
// Negative first operands need "--" so they are not read as flags:
//
//	calc add -- -2 3
package commands
