package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

// CatchRepository is the PostgreSQL implementation of ports.CatchRepository.
// Reads join the owning trip and its user so the ownership guard can check
// the owner without extra queries.
type CatchRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCatchRepository creates a catch repository backed by the given pool.
func NewCatchRepository(db *PostgresDB, logger *zap.Logger) ports.CatchRepository {
	return &CatchRepository{
		db:     db.DB(),
		logger: logger,
	}
}

const catchSelect = `
	SELECT c.id, c.time, c.latitude, c.longitude, c.species, c.lure_or_bait,
	       c.weather_condition, c.air_temperature, c.water_temperature, c.wind_speed,
	       c.trip_id, t.date, t.body_of_water, t.user_id, u.username
	FROM catches c
	JOIN trips t ON t.id = c.trip_id
	JOIN users u ON u.id = t.user_id`

// Create inserts a new catch and returns it with the generated id.
// A trip_id referencing no trip surfaces as a validation error rather than
// an opaque constraint failure.
func (r *CatchRepository) Create(ctx context.Context, c *domain.Catch) (*domain.Catch, error) {
	query := `
		INSERT INTO catches (time, latitude, longitude, species, lure_or_bait,
			weather_condition, air_temperature, water_temperature, wind_speed, trip_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		c.Time, c.Latitude, c.Longitude, c.Species, c.LureOrBait,
		c.WeatherCondition, c.AirTemperature, c.WaterTemperature, c.WindSpeed, c.TripID,
	).Scan(&c.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewValidation("the referenced trip does not exist")
		}

		return nil, fmt.Errorf("failed to insert catch: %w", err)
	}

	return c, nil
}

// Update persists the mutable fields of an existing catch.
func (r *CatchRepository) Update(ctx context.Context, c *domain.Catch) (*domain.Catch, error) {
	query := `
		UPDATE catches
		SET time = $1, latitude = $2, longitude = $3, species = $4, lure_or_bait = $5,
			weather_condition = $6, air_temperature = $7, water_temperature = $8, wind_speed = $9
		WHERE id = $10`

	if _, err := r.db.ExecContext(ctx, query,
		c.Time, c.Latitude, c.Longitude, c.Species, c.LureOrBait,
		c.WeatherCondition, c.AirTemperature, c.WaterTemperature, c.WindSpeed, c.ID,
	); err != nil {
		return nil, fmt.Errorf("failed to update catch: %w", err)
	}

	return c, nil
}

// FindByID returns the catch with the given id, or (nil, nil) when absent.
func (r *CatchRepository) FindByID(ctx context.Context, id int64) (*domain.Catch, error) {
	row := r.db.QueryRowContext(ctx, catchSelect+` WHERE c.id = $1`, id)

	c, err := scanCatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// FindByTripID returns all catches of the trip ordered by time of day.
func (r *CatchRepository) FindByTripID(ctx context.Context, tripID int64) ([]domain.Catch, error) {
	query := catchSelect + ` WHERE c.trip_id = $1 ORDER BY c.time, c.id`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query catches: %w", err)
	}
	defer rows.Close()

	catches := []domain.Catch{}

	for rows.Next() {
		c, err := scanCatch(rows)
		if err != nil {
			return nil, err
		}

		catches = append(catches, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catches: %w", err)
	}

	return catches, nil
}

// Exists reports whether a catch with the given id exists.
func (r *CatchRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool

	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM catches WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check catch existence: %w", err)
	}

	return exists, nil
}

// Delete removes the catch with the given id.
func (r *CatchRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM catches WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete catch: %w", err)
	}

	r.logger.Debug("deleted catch", zap.Int64("catch_id", id))

	return nil
}

func scanCatch(row rowScanner) (*domain.Catch, error) {
	var (
		c        domain.Catch
		trip     domain.Trip
		username string
	)

	err := row.Scan(&c.ID, &c.Time, &c.Latitude, &c.Longitude, &c.Species, &c.LureOrBait,
		&c.WeatherCondition, &c.AirTemperature, &c.WaterTemperature, &c.WindSpeed,
		&c.TripID, &trip.Date, &trip.BodyOfWater, &trip.UserID, &username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan catch: %w", err)
	}

	trip.ID = c.TripID
	trip.Owner = &domain.User{
		ID:       trip.UserID,
		Username: username,
	}
	c.Trip = &trip

	return &c, nil
}
