package rest

import (
	"github.com/fishinglog/fishing-log-service/internal/core/domain"
)

// UserSummary is the nested user representation in trip and catch responses.
// Only the id and username are exposed, never the password hash or email.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// UserResponse is the full user representation for the user endpoints.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// TripResponse represents a trip with its owner summary.
type TripResponse struct {
	ID          int64        `json:"id"`
	Date        domain.Date  `json:"date"`
	BodyOfWater string       `json:"bodyOfWater"`
	User        *UserSummary `json:"user,omitempty"`
}

// CatchResponse represents a catch with its owning trip.
type CatchResponse struct {
	ID               int64            `json:"id"`
	Time             domain.ClockTime `json:"time"`
	Latitude         float64          `json:"latitude"`
	Longitude        float64          `json:"longitude"`
	Species          string           `json:"species"`
	LureOrBait       string           `json:"lureOrBait"`
	WeatherCondition string           `json:"weatherCondition"`
	AirTemperature   int              `json:"airTemperature"`
	WaterTemperature int              `json:"waterTemperature"`
	WindSpeed        int              `json:"windSpeed"`
	Trip             *TripResponse    `json:"trip,omitempty"`
}

// WeatherResponse represents the simplified weather snapshot.
type WeatherResponse struct {
	WeatherCondition string  `json:"weatherCondition"`
	AirTemperature   float64 `json:"airTemperature"`
	WaterTemperature float64 `json:"waterTemperature"`
	WindSpeed        float64 `json:"windSpeed"`
}

func toUserSummary(user *domain.User) *UserSummary {
	if user == nil {
		return nil
	}

	return &UserSummary{
		ID:       user.ID,
		Username: user.Username,
	}
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}

func toTripResponse(trip *domain.Trip) TripResponse {
	return TripResponse{
		ID:          trip.ID,
		Date:        trip.Date,
		BodyOfWater: trip.BodyOfWater,
		User:        toUserSummary(trip.Owner),
	}
}

func toTripResponses(trips []domain.Trip) []TripResponse {
	responses := make([]TripResponse, 0, len(trips))

	for i := range trips {
		responses = append(responses, toTripResponse(&trips[i]))
	}

	return responses
}

func toCatchResponse(c *domain.Catch) CatchResponse {
	response := CatchResponse{
		ID:               c.ID,
		Time:             c.Time,
		Latitude:         c.Latitude,
		Longitude:        c.Longitude,
		Species:          c.Species,
		LureOrBait:       c.LureOrBait,
		WeatherCondition: c.WeatherCondition,
		AirTemperature:   c.AirTemperature,
		WaterTemperature: c.WaterTemperature,
		WindSpeed:        c.WindSpeed,
	}

	if c.Trip != nil {
		trip := toTripResponse(c.Trip)
		response.Trip = &trip
	}

	return response
}

func toCatchResponses(catches []domain.Catch) []CatchResponse {
	responses := make([]CatchResponse, 0, len(catches))

	for i := range catches {
		responses = append(responses, toCatchResponse(&catches[i]))
	}

	return responses
}
