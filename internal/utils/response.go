package utils

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"SmartSprinkler.dashboard/internal/models"
)

// RespondWithError sends a JSON error response using the APIError model.
// It sets the HTTP status code from the APIError and encodes the entire struct.
func RespondWithError(writer http.ResponseWriter, apiErr models.APIError) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(apiErr.StatusCode)

	if err := json.NewEncoder(writer).Encode(apiErr); err != nil {
		slog.Error("Failed to encode error response", "error", err)
	}
}

// RespondWithJSON sends a JSON success response.
func RespondWithJSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json")
	if payload == nil {
		writer.WriteHeader(statusCode)
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		writer.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(writer).Encode(models.NewAPIError(models.ErrorCodeInternalServerError, "Failed to encode response", nil, http.StatusInternalServerError))
		return
	}
	writer.WriteHeader(statusCode)
	_, _ = writer.Write(append(body, '\n'))
}

// ToAPIError maps a domain error onto the API error envelope.
func ToAPIError(err error) models.APIError {
	var apiErr models.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, models.ErrInvalidIndex):
		return models.NewAPIError(models.ErrorCodeInvalidIndex, err.Error(), nil, http.StatusBadRequest)
	case errors.Is(err, models.ErrEmptySequence):
		return models.NewAPIError(models.ErrorCodeEmptySequence, err.Error(), nil, http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidInput):
		return models.NewAPIError(models.ErrorCodeInvalidInput, err.Error(), map[string]int{"expected": models.SensorCount}, http.StatusBadRequest)
	default:
		return models.NewAPIError(models.ErrorCodeInternalServerError, err.Error(), nil, http.StatusInternalServerError)
	}
}
