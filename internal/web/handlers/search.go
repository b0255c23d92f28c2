package handlers

import (
	"net/http"
	"strings"
)

// SearchHandler handles pinyin initial search
type SearchHandler struct {
	Engine Engine
	Config *Config
}

// SearchResponse lists the regions found for a spell query
type SearchResponse struct {
	Query   string         `json:"query"`
	Total   int            `json:"total"`
	Results []RegionDetail `json:"results"`
}

// SearchRegions finds regions by the pinyin initials in q
func (h *SearchHandler) SearchRegions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := query.Get("q")
	if strings.TrimSpace(q) == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	limit := parseIntParam(query.Get("limit"), h.Config.SearchLimit)
	if limit < 1 {
		limit = h.Config.SearchLimit
	}
	if limit > h.Config.MaxSearchLimit {
		limit = h.Config.MaxSearchLimit
	}

	found := h.Engine.Search(q)
	resp := SearchResponse{Query: q, Total: len(found), Results: []RegionDetail{}}
	for i, reg := range found {
		if i == limit {
			break
		}
		resp.Results = append(resp.Results, detail(reg, false))
	}
	writeJSON(w, http.StatusOK, resp)
}
