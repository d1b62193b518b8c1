package handlers

import (
	"encoding/json"
	"net/http"
)

// Failures always reach the client as a {message} body with a status code;
// nothing propagates as a bare error or stack trace.

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

type insertResponse struct {
	InsertedID string `json:"insertedId"`
}

type deleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
