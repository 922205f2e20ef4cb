package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, nothing left to do but log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "An unknown error occurred"
	ErrMsgInvalidRequestBody = "Invalid request body"

	// User messages
	ErrMsgUserNotFoundError = "User not found"

	// Catalog messages
	ErrMsgCardNotFoundError = "Card not found"

	// Collection messages
	ErrMsgInsufficientQuantityError = "Not enough copies of that card"
	ErrMsgCardNotOwnedError         = "You do not own that card"

	// Trade messages
	ErrMsgTradeNotFoundError    = "Trade not found"
	ErrMsgSelfTradeError        = "You cannot trade with yourself"
	ErrMsgNotParticipantError   = "You are not part of this trade"
	ErrMsgTradeAlreadyDoneError = "This trade has already been resolved"
	ErrMsgCardUnavailableError  = "An offered card is no longer available"
	ErrMsgInvalidInputError     = "Invalid input"
	ErrMsgStorageUnavailableErr = "Service temporarily unavailable"
)
