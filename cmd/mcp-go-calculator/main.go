package main

import (
	"os"

	"github.com/sunfmin/mcp-go-calculator/pkg/config"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
	"github.com/sunfmin/mcp-go-calculator/pkg/mcp"
)

// Version is set during build
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	closeLog, err := cfg.SetupLogging()
	if err != nil {
		logger.Warn("Failed to set up log file", "error", err)
	}
	defer closeLog()

	logger.Info("Starting MCP Go Calculator", "version", Version)

	calcServer := mcp.NewMCPCalculatorServer(cfg.ServerName, Version)
	if err := calcServer.ServeStdio(); err != nil {
		logger.Error("Server error", "error", err)
		closeLog()
		os.Exit(1)
	}
}
