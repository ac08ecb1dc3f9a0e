package utils

import (
	"encoding/json"
	"net/http"

	"github.com/siamlex/gazette-search-service/common/models"
)

// WriteJSON writes a JSON response with the given status code and payload
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// WriteError writes a JSON response with the given status code and error message
func WriteError(w http.ResponseWriter, statusCode int, errorMessage string) {
	WriteJSON(w, statusCode, models.ErrorResponse{
		Error: errorMessage,
	})
}

// WriteErrorDetail writes an error response that carries the underlying
// cause text alongside the user-facing message
func WriteErrorDetail(w http.ResponseWriter, statusCode int, errorMessage, detail string) {
	WriteJSON(w, statusCode, models.ErrorResponse{
		Error:  errorMessage,
		Detail: detail,
	})
}
