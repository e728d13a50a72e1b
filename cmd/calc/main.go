package main

import (
	"os"

	"github.com/sunfmin/mcp-go-calculator/cmd/calc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
