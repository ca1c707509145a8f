package handler

import (
	"customer-dashboard/internal/api/handler/dto"
	"customer-dashboard/internal/pkg/apperrors"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

const internalServerErrorMessage = "Internal Server Error"

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal Server Error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

// respondError answers every failure with a generic 500 so no cause leaks to
// the client. Store failures are already logged by the handler.
func respondError(w http.ResponseWriter, err error) {
	if !errors.Is(err, apperrors.ErrStoreUnavailable) {
		slog.Default().Error("Unhandled internal error", "error", err)
	}
	respondJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: internalServerErrorMessage})
}
