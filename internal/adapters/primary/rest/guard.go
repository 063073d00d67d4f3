package rest

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

// requireOwner parses the userId query parameter and verifies that the
// request's bearer token belongs to that user. The ownership check runs
// before any payload validation, so a request that is both foreign and
// malformed gets 403, not 400.
//
// Returns the claimed user id and false when a response has already been
// written.
func requireOwner(logger *zap.Logger, ownership ports.OwnershipService, w http.ResponseWriter, r *http.Request) (int64, bool) {
	userIDStr := r.URL.Query().Get("userId")

	if userIDStr == "" {
		respondWithError(logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"The 'userId' query parameter is required")

		return 0, false
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		respondWithError(logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Invalid userId format")

		return 0, false
	}

	if !ownership.Verify(r.Context(), userID, r.Header.Get("Authorization")) {
		ownershipDenied(logger, w)
		return 0, false
	}

	return userID, true
}

// pathID parses a numeric path variable, writing a 400 on failure.
func pathID(logger *zap.Logger, w http.ResponseWriter, vars map[string]string, name string) (int64, bool) {
	id, err := strconv.ParseInt(vars[name], 10, 64)
	if err != nil {
		respondWithError(logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Invalid "+name+" format")

		return 0, false
	}

	return id, true
}
