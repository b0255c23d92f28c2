package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ParseHandler handles address parsing endpoints
type ParseHandler struct {
	Engine Engine
	Config *Config
}

// ParseAddress parses the address in the q parameter
func (h *ParseHandler) ParseAddress(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}
	writeJSON(w, http.StatusOK, parseResponse(q, h.Engine.Parse(q)))
}

// BatchRequest is the body of POST /api/parse
type BatchRequest struct {
	Addresses []string `json:"addresses"`
}

// BatchResponse answers POST /api/parse, one entry per address in order
type BatchResponse struct {
	Count   int             `json:"count"`
	Results []ParseResponse `json:"results"`
}

// ParseBatch parses every address of a JSON body
func (h *ParseHandler) ParseBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Addresses) == 0 {
		writeError(w, http.StatusBadRequest, "addresses must not be empty")
		return
	}
	if max := h.Config.MaxBatch; max > 0 && len(req.Addresses) > max {
		writeError(w, http.StatusRequestEntityTooLarge, "too many addresses")
		return
	}

	resp := BatchResponse{Count: len(req.Addresses), Results: make([]ParseResponse, 0, len(req.Addresses))}
	for _, a := range req.Addresses {
		resp.Results = append(resp.Results, parseResponse(a, h.Engine.Parse(a)))
	}
	writeJSON(w, http.StatusOK, resp)
}
