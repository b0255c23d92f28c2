package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/address-parsing/internal/logger"
	"github.com/address-parsing/internal/parser"
	"github.com/address-parsing/internal/region"
)

// Engine is what the handlers need from the parsing engine.
type Engine interface {
	Parse(address string) []*parser.MatchResult
	Search(query string) []*region.Region
	Region(id string) (*region.Region, bool)
}

// Config holds handler limits
type Config struct {
	// MaxBatch is the most addresses a single POST /api/parse may carry.
	MaxBatch int
	// SearchLimit is the default and MaxSearchLimit the largest page of
	// spell search results.
	SearchLimit    int
	MaxSearchLimit int
}

// DefaultConfig returns the limits used when none are configured.
func DefaultConfig() *Config {
	return &Config{MaxBatch: 100, SearchLimit: 20, MaxSearchLimit: 100}
}

// errorResponse is the body of every non-2xx JSON reply
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L().Warn("encoding response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// parseIntParam parses a query parameter as int with a default value
func parseIntParam(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultVal
}
