package rest

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

// FeedbackHandler handles HTTP requests collecting free-form user feedback.
type FeedbackHandler struct {
	feedback  ports.FeedbackService
	ownership ports.OwnershipService
	logger    *zap.Logger
}

// NewFeedbackHandler creates a new HTTP handler for feedback collection.
func NewFeedbackHandler(feedback ports.FeedbackService, ownership ports.OwnershipService, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedback:  feedback,
		ownership: ownership,
		logger:    logger,
	}
}

// FeedbackRequest is the payload for POST /feedback.
type FeedbackRequest struct {
	Feedback string `json:"feedback"`
}

// Collect handles POST requests appending feedback to the feedback store.
//
// Response codes:
//   - 200: Feedback recorded
//   - 400: Missing feedback text
//   - 403: Token does not belong to the claimed user
//   - 500: Feedback could not be written
func (h *FeedbackHandler) Collect(w http.ResponseWriter, r *http.Request) {
	_, ok := requireOwner(h.logger, h.ownership, w, r)
	if !ok {
		return
	}

	var req FeedbackRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "Invalid request body")
		return
	}

	if req.Feedback == "" {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Feedback text is required")

		return
	}

	if err := h.feedback.Collect(r.Context(), req.Feedback); err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]string{"status": "received"})
}
