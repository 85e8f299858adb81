package controllers

import (
	"net/http"

	"tinyblog/app/views"
)

// Home serves the single page client.
func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(views.Index)
}
