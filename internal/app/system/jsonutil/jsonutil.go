// Package jsonutil provides helper functions for JSON API responses.
//
// Error responses carry a stable machine-readable kind plus a
// human-readable detail: {"error": "<kind>", "detail": "<text>"}.
package jsonutil

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// OK writes a 200 OK JSON response.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Created writes a 201 Created JSON response.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

// NoContent writes a 204 No Content response (no body).
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes an error response with the given status code.
// The body is {"error": kind, "detail": detail}. The kind is the stable
// contract clients switch on; the detail is display text and may change.
func Error(w http.ResponseWriter, status int, kind, detail string) {
	JSON(w, status, map[string]string{
		"error":  kind,
		"detail": detail,
	})
}

// BadRequest writes a 400 Bad Request error response.
func BadRequest(w http.ResponseWriter, kind, detail string) {
	Error(w, http.StatusBadRequest, kind, detail)
}

// Unauthorized writes a 401 Unauthorized error response.
func Unauthorized(w http.ResponseWriter, kind, detail string) {
	Error(w, http.StatusUnauthorized, kind, detail)
}

// NotFound writes a 404 Not Found error response.
func NotFound(w http.ResponseWriter, kind, detail string) {
	Error(w, http.StatusNotFound, kind, detail)
}

// InternalError writes a 500 Internal Server Error response.
// Log the actual error separately; never expose internals to clients.
func InternalError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "internal", "Something went wrong. Try again later.")
}

// Decode reads and decodes JSON from the request body into v.
func Decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
