package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestFeedbackHandler_Collect(t *testing.T) {
	t.Run("records the feedback", func(t *testing.T) {
		feedback := new(MockFeedbackService)
		feedback.On("Collect", mock.Anything, "great app").Return(nil)

		handler := NewFeedbackHandler(feedback, allowOwner(), zap.NewNop())

		body, _ := json.Marshal(FeedbackRequest{Feedback: "great app"})
		req := httptest.NewRequest(http.MethodPost, "/feedback?userId=7", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.Collect(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"received"}`, w.Body.String())
		feedback.AssertExpectations(t)
	})

	t.Run("rejects empty feedback", func(t *testing.T) {
		feedback := new(MockFeedbackService)
		handler := NewFeedbackHandler(feedback, allowOwner(), zap.NewNop())

		body, _ := json.Marshal(FeedbackRequest{})
		req := httptest.NewRequest(http.MethodPost, "/feedback?userId=7", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.Collect(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		feedback.AssertNotCalled(t, "Collect", mock.Anything, mock.Anything)
	})

	t.Run("foreign user gets 403", func(t *testing.T) {
		feedback := new(MockFeedbackService)
		handler := NewFeedbackHandler(feedback, denyOwner(), zap.NewNop())

		body, _ := json.Marshal(FeedbackRequest{Feedback: "great app"})
		req := httptest.NewRequest(http.MethodPost, "/feedback?userId=7", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.Collect(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
