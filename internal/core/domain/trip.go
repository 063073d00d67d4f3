package domain

// Trip represents a fishing outing on a date at a body of water.
// Every trip is owned by exactly one user; the owner reference is immutable.
type Trip struct {
	// ID uniquely identifies the trip (database-generated)
	ID int64

	// Date is the calendar day of the outing
	Date Date

	// BodyOfWater names the lake, river or coast fished
	BodyOfWater string

	// UserID references the owning user
	UserID int64

	// Owner is the owning user record when loaded alongside the trip.
	// May be nil for operations that only need the foreign key.
	Owner *User
}

// TripUpdate carries the mutable trip fields for a partial update.
// Nil fields are left untouched; the owner reference cannot be changed.
type TripUpdate struct {
	Date        *Date
	BodyOfWater *string
}
