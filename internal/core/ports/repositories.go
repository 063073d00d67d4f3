// Package ports defines the interfaces that connect the core services to
// their adapters: repositories, the weather provider, token handling and
// infrastructure services.
package ports

import (
	"context"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
)

// UserRepository persists user records.
// Find methods return (nil, nil) when no row exists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Exists(ctx context.Context, id int64) (bool, error)

	// DeleteCascade removes the user, all trips owned by the user and all
	// catches of those trips inside a single transaction. Deleting a
	// missing id is a no-op.
	DeleteCascade(ctx context.Context, id int64) error
}

// TripRepository persists trips.
// Find methods return (nil, nil) when no row exists.
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	Update(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	FindByID(ctx context.Context, id int64) (*domain.Trip, error)
	FindByUserID(ctx context.Context, userID int64) ([]domain.Trip, error)
	FindByUserIDAndDate(ctx context.Context, userID int64, date domain.Date) ([]domain.Trip, error)
	FindByUserIDBetween(ctx context.Context, userID int64, start, end domain.Date) ([]domain.Trip, error)
	Exists(ctx context.Context, id int64) (bool, error)

	// DeleteCascade removes the trip and all its catches inside a single
	// transaction. Deleting a missing id is a no-op.
	DeleteCascade(ctx context.Context, id int64) error
}

// CatchRepository persists catches.
// Find methods return (nil, nil) when no row exists.
type CatchRepository interface {
	Create(ctx context.Context, c *domain.Catch) (*domain.Catch, error)
	Update(ctx context.Context, c *domain.Catch) (*domain.Catch, error)
	FindByID(ctx context.Context, id int64) (*domain.Catch, error)
	FindByTripID(ctx context.Context, tripID int64) ([]domain.Catch, error)
	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes the catch. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id int64) error
}
