// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
)

// DefaultServerName is the MCP server name used when CALC_SERVER_NAME is unset.
const DefaultServerName = "Go Calculator MCP"

// Config holds settings shared by the binaries.
type Config struct {
	Debug      bool
	LogFile    string
	ServerName string
}

// Load reads the given .env files (".env" when none are given) and then the
// environment. Missing files are ignored; variables already set in the
// environment win over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Debug:      logger.DebugEnabled(os.Getenv("MCP_DEBUG")),
		LogFile:    os.Getenv("CALC_LOG_FILE"),
		ServerName: os.Getenv("CALC_SERVER_NAME"),
	}
	if cfg.ServerName == "" {
		cfg.ServerName = DefaultServerName
	}
	return cfg, nil
}

// SetupLogging points the global logger at the configured log file, or at
// stderr when none is set. The returned close function is never nil.
func (c *Config) SetupLogging() (func() error, error) {
	if c.LogFile == "" {
		logger.Setup(c.Debug, os.Stderr)
		return func() error { return nil }, nil
	}

	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logger.Setup(c.Debug, os.Stderr)
		return func() error { return nil }, fmt.Errorf("open log file: %w", err)
	}

	logger.Setup(c.Debug, logFile)
	return logFile.Close, nil
}
