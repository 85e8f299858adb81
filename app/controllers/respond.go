package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 2 << 20

// Helper functions for consistent response handling

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, map[string]string{"error": message})
}

// sendEmpty writes a status with no body.
func sendEmpty(w http.ResponseWriter, status int) {
	w.Header().Del("Content-Type")
	w.WriteHeader(status)
}

var errTrailingData = errors.New("unexpected data after JSON value")

// decodeJSON reads exactly one JSON value from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return errTrailingData
	}
	return nil
}

// sendDecodeError answers a body decodeJSON rejected.
func sendDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		sendError(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
}

// pathID reads a uint32 route variable. Callers answer 404 on error, the
// same as a path the router does not match.
func pathID(r *http.Request, name string) (uint32, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}
