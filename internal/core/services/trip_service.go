package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

type tripService struct {
	trips  ports.TripRepository
	logger *zap.Logger
}

// NewTripService creates the service handling trip business operations,
// including the cascade delete of a trip's catches.
func NewTripService(trips ports.TripRepository, logger *zap.Logger) ports.TripService {
	return &tripService{
		trips:  trips,
		logger: logger,
	}
}

func (s *tripService) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		s.logger.Error("failed to create trip", zap.Int64("user_id", trip.UserID), zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (s *tripService) Update(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	return s.trips.Update(ctx, trip)
}

func (s *tripService) PartialUpdate(ctx context.Context, id int64, update domain.TripUpdate) (*domain.Trip, error) {
	existing, err := s.trips.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return nil, domain.NewNotFound("trip", id)
	}

	if update.Date != nil {
		existing.Date = *update.Date
	}

	if update.BodyOfWater != nil {
		existing.BodyOfWater = *update.BodyOfWater
	}

	return s.trips.Update(ctx, existing)
}

func (s *tripService) FindOne(ctx context.Context, id int64) (*domain.Trip, error) {
	return s.trips.FindByID(ctx, id)
}

func (s *tripService) FindByUserID(ctx context.Context, userID int64) ([]domain.Trip, error) {
	return s.trips.FindByUserID(ctx, userID)
}

func (s *tripService) FindByUserIDAndDate(ctx context.Context, userID int64, date domain.Date) ([]domain.Trip, error) {
	return s.trips.FindByUserIDAndDate(ctx, userID, date)
}

// FindLastSixMonths returns the user's trips dated within
// [today - 6 months + 1 day, today].
func (s *tripService) FindLastSixMonths(ctx context.Context, userID int64) ([]domain.Trip, error) {
	end := domain.Today()
	start := end.AddMonths(-6, 1)

	return s.trips.FindByUserIDBetween(ctx, userID, start, end)
}

func (s *tripService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.trips.Exists(ctx, id)
}

// Delete removes the trip and its catches in one transaction. Missing ids
// are a no-op, matching HTTP DELETE semantics.
func (s *tripService) Delete(ctx context.Context, id int64) error {
	if err := s.trips.DeleteCascade(ctx, id); err != nil {
		s.logger.Error("failed to delete trip", zap.Int64("trip_id", id), zap.Error(err))
		return err
	}

	return nil
}
