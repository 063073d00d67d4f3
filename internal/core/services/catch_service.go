package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

type catchService struct {
	catches ports.CatchRepository
	logger  *zap.Logger
}

// NewCatchService creates the service handling catch business operations.
func NewCatchService(catches ports.CatchRepository, logger *zap.Logger) ports.CatchService {
	return &catchService{
		catches: catches,
		logger:  logger,
	}
}

func (s *catchService) Create(ctx context.Context, c *domain.Catch) (*domain.Catch, error) {
	created, err := s.catches.Create(ctx, c)
	if err != nil {
		s.logger.Error("failed to create catch", zap.Int64("trip_id", c.TripID), zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (s *catchService) Update(ctx context.Context, c *domain.Catch) (*domain.Catch, error) {
	return s.catches.Update(ctx, c)
}

func (s *catchService) PartialUpdate(ctx context.Context, id int64, update domain.CatchUpdate) (*domain.Catch, error) {
	existing, err := s.catches.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return nil, domain.NewNotFound("catch", id)
	}

	if update.Time != nil {
		existing.Time = *update.Time
	}

	if update.Latitude != nil {
		existing.Latitude = *update.Latitude
	}

	if update.Longitude != nil {
		existing.Longitude = *update.Longitude
	}

	if update.Species != nil {
		existing.Species = *update.Species
	}

	if update.LureOrBait != nil {
		existing.LureOrBait = *update.LureOrBait
	}

	if update.WeatherCondition != nil {
		existing.WeatherCondition = *update.WeatherCondition
	}

	if update.AirTemperature != nil {
		existing.AirTemperature = *update.AirTemperature
	}

	if update.WaterTemperature != nil {
		existing.WaterTemperature = *update.WaterTemperature
	}

	if update.WindSpeed != nil {
		existing.WindSpeed = *update.WindSpeed
	}

	return s.catches.Update(ctx, existing)
}

func (s *catchService) FindOne(ctx context.Context, id int64) (*domain.Catch, error) {
	return s.catches.FindByID(ctx, id)
}

func (s *catchService) FindByTripID(ctx context.Context, tripID int64) ([]domain.Catch, error) {
	return s.catches.FindByTripID(ctx, tripID)
}

func (s *catchService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.catches.Exists(ctx, id)
}

func (s *catchService) Delete(ctx context.Context, id int64) error {
	if err := s.catches.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete catch", zap.Int64("catch_id", id), zap.Error(err))
		return err
	}

	return nil
}
