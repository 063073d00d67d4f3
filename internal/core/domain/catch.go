package domain

// Catch represents a single fish-catching event recorded within a trip.
// Every catch belongs to exactly one trip; the trip reference is immutable.
type Catch struct {
	// ID uniquely identifies the catch (database-generated)
	ID int64

	// Time is the time of day the fish was caught
	Time ClockTime

	// Latitude of the catch location, -90 to 90 degrees
	Latitude float64

	// Longitude of the catch location, -180 to 180 degrees
	Longitude float64

	// Species is the fish species, letters and spaces, at most 50 characters
	Species string

	// LureOrBait names the lure or bait used
	LureOrBait string

	// WeatherCondition is the coarse condition label at the time of the catch
	WeatherCondition string

	// AirTemperature in degrees Fahrenheit, -50 to 150
	AirTemperature int

	// WaterTemperature in degrees Fahrenheit, -50 to 150
	WaterTemperature int

	// WindSpeed in miles per hour, 0 to 100
	WindSpeed int

	// TripID references the trip this catch belongs to
	TripID int64

	// Trip is the owning trip record when loaded alongside the catch.
	// May be nil for operations that only need the foreign key.
	Trip *Trip
}

// CatchUpdate carries the mutable catch fields for a partial update.
// Nil fields are left untouched; the trip reference cannot be changed.
type CatchUpdate struct {
	Time             *ClockTime
	Latitude         *float64
	Longitude        *float64
	Species          *string
	LureOrBait       *string
	WeatherCondition *string
	AirTemperature   *int
	WaterTemperature *int
	WindSpeed        *int
}
