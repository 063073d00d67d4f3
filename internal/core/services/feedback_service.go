package services

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

type feedbackService struct {
	filePath string
	logger   *zap.Logger
}

// NewFeedbackService creates the service that appends user feedback to a
// local text file, one entry per line.
func NewFeedbackService(filePath string, logger *zap.Logger) ports.FeedbackService {
	return &feedbackService{
		filePath: filePath,
		logger:   logger,
	}
}

func (s *feedbackService) Collect(ctx context.Context, feedback string) error {
	f, err := os.OpenFile(s.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		s.logger.Error("failed to open feedback file", zap.String("path", s.filePath), zap.Error(err))
		return fmt.Errorf("failed to open feedback file: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Error("failed to close feedback file", zap.Error(cerr))
		}
	}()

	if _, err := fmt.Fprintln(f, feedback); err != nil {
		s.logger.Error("failed to write feedback", zap.Error(err))
		return fmt.Errorf("failed to write feedback: %w", err)
	}

	return nil
}
