package rest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

// MockOwnershipService is a mock implementation of ports.OwnershipService.
type MockOwnershipService struct {
	mock.Mock
}

func (m *MockOwnershipService) Verify(ctx context.Context, claimedUserID int64, authorizationHeader string) bool {
	args := m.Called(ctx, claimedUserID, authorizationHeader)
	return args.Bool(0)
}

// allowOwner returns an ownership mock that accepts every request.
func allowOwner() *MockOwnershipService {
	ownership := new(MockOwnershipService)
	ownership.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return(true)

	return ownership
}

// denyOwner returns an ownership mock that rejects every request.
func denyOwner() *MockOwnershipService {
	ownership := new(MockOwnershipService)
	ownership.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return(false)

	return ownership
}

// MockAuthService is a mock implementation of ports.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password, email string) (*ports.AuthResult, error) {
	args := m.Called(ctx, username, password, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*ports.AuthResult), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*ports.AuthResult), args.Error(1)
}

// MockTripService is a mock implementation of ports.TripService.
type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	args := m.Called(ctx, trip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) Update(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	args := m.Called(ctx, trip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) PartialUpdate(ctx context.Context, id int64, update domain.TripUpdate) (*domain.Trip, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) FindOne(ctx context.Context, id int64) (*domain.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) FindByUserID(ctx context.Context, userID int64) ([]domain.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripService) FindByUserIDAndDate(ctx context.Context, userID int64, date domain.Date) ([]domain.Trip, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripService) FindLastSixMonths(ctx context.Context, userID int64) ([]domain.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripService) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTripService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCatchService is a mock implementation of ports.CatchService.
type MockCatchService struct {
	mock.Mock
}

func (m *MockCatchService) Create(ctx context.Context, c *domain.Catch) (*domain.Catch, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Catch), args.Error(1)
}

func (m *MockCatchService) Update(ctx context.Context, c *domain.Catch) (*domain.Catch, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Catch), args.Error(1)
}

func (m *MockCatchService) PartialUpdate(ctx context.Context, id int64, update domain.CatchUpdate) (*domain.Catch, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Catch), args.Error(1)
}

func (m *MockCatchService) FindOne(ctx context.Context, id int64) (*domain.Catch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Catch), args.Error(1)
}

func (m *MockCatchService) FindByTripID(ctx context.Context, tripID int64) ([]domain.Catch, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Catch), args.Error(1)
}

func (m *MockCatchService) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatchService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserService is a mock implementation of ports.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) FindAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) FindOne(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) PartialUpdate(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWeatherService is a mock implementation of ports.WeatherService.
type MockWeatherService struct {
	mock.Mock
}

func (m *MockWeatherService) GetCurrentWeather(ctx context.Context, coords domain.Coordinates) (*domain.WeatherSnapshot, error) {
	args := m.Called(ctx, coords)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.WeatherSnapshot), args.Error(1)
}

// MockFeedbackService is a mock implementation of ports.FeedbackService.
type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) Collect(ctx context.Context, feedback string) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}
