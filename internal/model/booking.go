package model

import "time"

const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking reserves one court at a center for a time range.
type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CenterID  string    `json:"centerId"`
	Sport     string    `json:"sport"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Slot returns the booking's time range.
func (b Booking) Slot() TimeSlot {
	return TimeSlot{Start: b.Start, End: b.End}
}

// BookingInput is the payload for creating a booking.
type BookingInput struct {
	CenterID string    `json:"centerId" validate:"required,uuid"`
	Sport    string    `json:"sport" validate:"required,max=40"`
	Start    time.Time `json:"start" validate:"required"`
	End      time.Time `json:"end" validate:"required"`
	Note     string    `json:"note" validate:"max=500"`
}

// Stats are platform-wide totals for the admin dashboard.
type Stats struct {
	Users    int `json:"users"`
	Groups   int `json:"groups"`
	Bookings int `json:"bookings"`
	Centers  int `json:"centers"`
}
