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

// TripRepository is the PostgreSQL implementation of ports.TripRepository.
// Reads join the owning user so callers get the owner id and username
// without a second query.
type TripRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewTripRepository creates a trip repository backed by the given pool.
func NewTripRepository(db *PostgresDB, logger *zap.Logger) ports.TripRepository {
	return &TripRepository{
		db:     db.DB(),
		logger: logger,
	}
}

const tripSelect = `
	SELECT t.id, t.date, t.body_of_water, t.user_id, u.username
	FROM trips t
	JOIN users u ON u.id = t.user_id`

// Create inserts a new trip and returns it with the generated id.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	query := `
		INSERT INTO trips (date, body_of_water, user_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		trip.Date, trip.BodyOfWater, trip.UserID,
	).Scan(&trip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trip: %w", err)
	}

	return trip, nil
}

// Update persists the mutable fields of an existing trip.
func (r *TripRepository) Update(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	query := `
		UPDATE trips
		SET date = $1, body_of_water = $2
		WHERE id = $3`

	if _, err := r.db.ExecContext(ctx, query, trip.Date, trip.BodyOfWater, trip.ID); err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	return trip, nil
}

// FindByID returns the trip with the given id, or (nil, nil) when absent.
func (r *TripRepository) FindByID(ctx context.Context, id int64) (*domain.Trip, error) {
	row := r.db.QueryRowContext(ctx, tripSelect+` WHERE t.id = $1`, id)

	trip, err := scanTrip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return trip, nil
}

// FindByUserID returns all trips owned by the user ordered by date descending.
func (r *TripRepository) FindByUserID(ctx context.Context, userID int64) ([]domain.Trip, error) {
	query := tripSelect + ` WHERE t.user_id = $1 ORDER BY t.date DESC, t.id DESC`

	return r.queryTrips(ctx, query, userID)
}

// FindByUserIDAndDate returns the user's trips on the given date.
func (r *TripRepository) FindByUserIDAndDate(ctx context.Context, userID int64, date domain.Date) ([]domain.Trip, error) {
	query := tripSelect + ` WHERE t.user_id = $1 AND t.date = $2 ORDER BY t.id`

	return r.queryTrips(ctx, query, userID, date)
}

// FindByUserIDBetween returns the user's trips with dates in [start, end].
func (r *TripRepository) FindByUserIDBetween(ctx context.Context, userID int64, start, end domain.Date) ([]domain.Trip, error) {
	query := tripSelect + ` WHERE t.user_id = $1 AND t.date BETWEEN $2 AND $3 ORDER BY t.date DESC, t.id DESC`

	return r.queryTrips(ctx, query, userID, start, end)
}

// Exists reports whether a trip with the given id exists.
func (r *TripRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool

	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM trips WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check trip existence: %w", err)
	}

	return exists, nil
}

// DeleteCascade removes the trip and all its catches inside a single
// transaction.
func (r *TripRepository) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM catches WHERE trip_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete catches for trip: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trip delete: %w", err)
	}

	r.logger.Debug("deleted trip with catches", zap.Int64("trip_id", id))

	return nil
}

func (r *TripRepository) queryTrips(ctx context.Context, query string, args ...interface{}) ([]domain.Trip, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}

	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}

		trips = append(trips, *trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}

	return trips, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrip(row rowScanner) (*domain.Trip, error) {
	var (
		trip     domain.Trip
		username string
	)

	err := row.Scan(&trip.ID, &trip.Date, &trip.BodyOfWater, &trip.UserID, &username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan trip: %w", err)
	}

	trip.Owner = &domain.User{
		ID:       trip.UserID,
		Username: username,
	}

	return &trip, nil
}
