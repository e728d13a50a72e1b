package types

import (
	"encoding/json"
	"time"
)

// CalcContext provides shared context across all calculation responses
type CalcContext struct {
	Timestamp    time.Time `json:"timestamp"`           // Operation timestamp
	Operation    string    `json:"operation,omitempty"` // Operation performed
	Status       string    `json:"status,omitempty"`    // "success" or "error"
	Summary      string    `json:"summary,omitempty"`   // Human-readable description, e.g. "8 / 2 = 4"
	ErrorMessage string    `json:"error,omitempty"`     // Error message if any
}

// CalculationResponse is returned by every arithmetic tool and by the CLI in JSON mode
type CalculationResponse struct {
	Status    string      `json:"status"`
	Context   CalcContext `json:"context"`
	Operation string      `json:"operation"`
	A         int         `json:"a"`
	B         int         `json:"b"`
	Result    json.Number `json:"result,omitempty"` // Exact digits; omitted on error
}

// ServerInfo identifies the running server
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// StatusResponse describes the server and the operations it offers
type StatusResponse struct {
	Server     ServerInfo `json:"server"`
	Operations []string   `json:"operations"`
}
