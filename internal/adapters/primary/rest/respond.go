// Package rest implements the HTTP handlers for the fishing log service.
// This package serves as the primary adapter, translating HTTP requests
// into domain operations and formatting responses for clients.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/middleware"
)

// ErrorResponse represents a standardized error response structure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondWithJSON sends a JSON response with the specified status code.
func respondWithJSON(logger *zap.Logger, w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// respondWithError sends a standardized error response.
func respondWithError(logger *zap.Logger, w http.ResponseWriter, status int, code, message string) {
	respondWithJSON(logger, w, status, ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// handleServiceError maps domain errors to HTTP responses.
//
// Error mappings:
//   - VALIDATION_FAILED, CONFLICT -> 400 Bad Request
//   - INVALID_CREDENTIALS -> 401 Unauthorized
//   - OWNERSHIP_DENIED -> 403 Forbidden
//   - NOT_FOUND -> 404 Not Found
//   - WEATHER_RETRIEVAL_ERROR -> 503 Service Unavailable
//   - Other errors -> 500 Internal Server Error
func handleServiceError(logger *zap.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var e *domain.Error

	if errors.As(err, &e) {
		switch e.Code {
		case domain.CodeValidationFailed, domain.CodeConflict:
			respondWithError(logger, w, http.StatusBadRequest, e.Code, e.Message)
		case domain.CodeInvalidCredentials:
			respondWithError(logger, w, http.StatusUnauthorized, e.Code, e.Message)
		case domain.CodeOwnershipDenied:
			respondWithError(logger, w, http.StatusForbidden, e.Code, e.Message)
		case domain.CodeNotFound:
			respondWithError(logger, w, http.StatusNotFound, e.Code, e.Message)
		case domain.CodeWeatherRetrieval:
			respondWithError(
				logger,
				w,
				http.StatusServiceUnavailable,
				e.Code,
				"Weather service is temporarily unavailable",
			)
		default:
			respondWithError(
				logger,
				w,
				http.StatusInternalServerError,
				domain.CodeInternal,
				"An unexpected error occurred",
			)
		}

		return
	}

	logger.Error("unexpected error",
		zap.Error(err),
		zap.String("correlation_id", middleware.GetCorrelationID(r.Context())),
		zap.String("request_id", middleware.GetRequestID(r.Context())),
	)

	respondWithError(
		logger,
		w,
		http.StatusInternalServerError,
		domain.CodeInternal,
		"An unexpected error occurred",
	)
}

// ownershipDenied sends the uniform 403 used by every guarded route.
func ownershipDenied(logger *zap.Logger, w http.ResponseWriter) {
	respondWithError(
		logger,
		w,
		http.StatusForbidden,
		domain.CodeOwnershipDenied,
		"You do not have permission to act for this user",
	)
}
