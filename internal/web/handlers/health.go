package handlers

import "net/http"

// Health reports that the server is up and its dictionary is loaded
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
