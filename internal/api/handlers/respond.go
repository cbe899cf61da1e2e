package handlers

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes v as the JSON response body.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondMessage writes the {"message": ...} payload used by most
// endpoints. Messages are fixed strings; store errors never reach the
// client.
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
