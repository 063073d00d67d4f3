package ports

import (
	"context"
	"time"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
)

// AuthResult carries the outcome of a successful registration or login.
type AuthResult struct {
	Token    string
	Username string
	UserID   int64
}

// AuthService registers users and issues signed tokens on login.
type AuthService interface {
	Register(ctx context.Context, username, password, email string) (*AuthResult, error)
	Authenticate(ctx context.Context, username, password string) (*AuthResult, error)
}

// OwnershipService confirms that the bearer token attached to a request
// belongs to the user the request claims to act for.
type OwnershipService interface {
	// Verify returns true only when the user identified by claimedUserID
	// exists and its username equals the subject embedded in the bearer
	// token. Any token decoding failure is treated as a mismatch, never
	// surfaced as an error.
	Verify(ctx context.Context, claimedUserID int64, authorizationHeader string) bool
}

// TokenService issues and parses signed bearer tokens.
type TokenService interface {
	Generate(username string) (string, error)
	ExtractUsername(token string) (string, error)
}

// UserService handles business operations on user records.
type UserService interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindOne(ctx context.Context, id int64) (*domain.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	PartialUpdate(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error)

	// Delete removes the user together with all owned trips and their
	// catches. Missing ids are a no-op.
	Delete(ctx context.Context, id int64) error
}

// TripService handles business operations on trips.
type TripService interface {
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	Update(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	PartialUpdate(ctx context.Context, id int64, update domain.TripUpdate) (*domain.Trip, error)
	FindOne(ctx context.Context, id int64) (*domain.Trip, error)
	FindByUserID(ctx context.Context, userID int64) ([]domain.Trip, error)
	FindByUserIDAndDate(ctx context.Context, userID int64, date domain.Date) ([]domain.Trip, error)
	FindLastSixMonths(ctx context.Context, userID int64) ([]domain.Trip, error)
	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes the trip together with all its catches. Missing ids
	// are a no-op.
	Delete(ctx context.Context, id int64) error
}

// CatchService handles business operations on catches.
type CatchService interface {
	Create(ctx context.Context, c *domain.Catch) (*domain.Catch, error)
	Update(ctx context.Context, c *domain.Catch) (*domain.Catch, error)
	PartialUpdate(ctx context.Context, id int64, update domain.CatchUpdate) (*domain.Catch, error)
	FindOne(ctx context.Context, id int64) (*domain.Catch, error)
	FindByTripID(ctx context.Context, tripID int64) ([]domain.Catch, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// WeatherService aggregates current conditions and the marine forecast into
// a simplified snapshot.
type WeatherService interface {
	GetCurrentWeather(ctx context.Context, coords domain.Coordinates) (*domain.WeatherSnapshot, error)
}

// FeedbackService stores free-form user feedback.
type FeedbackService interface {
	Collect(ctx context.Context, feedback string) error
}

// RateLimitService limits request rates per client identifier.
type RateLimitService interface {
	Allow(ctx context.Context, identifier string, limit int, window time.Duration) (bool, error)
	Reset(ctx context.Context, identifier string) error
}
