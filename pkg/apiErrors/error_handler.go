package apiErrors

import (
	"encoding/json"
	"net/http"
)

const (
	// Validation errors (VAL_*)
	ErrInvalidRequest      = "VAL_001" // Malformed request body
	ErrMissingRequiredData = "VAL_002" // Required field absent

	// Server errors (SRV_*)
	ErrInternalServer  = "SRV_001" // Unexpected internal failure
	ErrExternalService = "SRV_002" // Upstream API failure
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusInternalServerError,
}

// APIError is the standard error payload. Error always carries the
// human-readable message; Code is the stable machine identifier.
type APIError struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error payload to the response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Error:   message,
		Code:    code,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
