package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ecosphere/ecosphere-api/pkg/apperrors"
)

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps an error to its HTTP status. Unexpected errors become a
// generic internal response so no detail leaks to the client.
func writeError(w http.ResponseWriter, err error) {
	status := apperrors.Status(err)

	var appErr *apperrors.Error
	if errors.As(err, &appErr) && status != http.StatusInternalServerError {
		writeJSON(w, status, errorResponse{Error: appErr.Code, Message: appErr.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:   apperrors.CodeInternal,
		Message: "internal server error",
	})
}

func writeValidation(w http.ResponseWriter, message string) {
	writeError(w, apperrors.Validation(message))
}
