package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegionsHandler serves region lookups
type RegionsHandler struct {
	Engine Engine
}

// GetRegion returns one region with its path and children
func (h *RegionsHandler) GetRegion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	reg, ok := h.Engine.Region(id)
	if !ok {
		writeError(w, http.StatusNotFound, "region not found")
		return
	}
	writeJSON(w, http.StatusOK, detail(reg, true))
}
