package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// Booking is a reservation request against an accommodation for a
// half-open date interval [CheckIn, CheckOut). Status never re-enters
// pending once left; rejected and cancelled are terminal.
type Booking struct {
	ID              int64         `json:"id"`
	UserID          int64         `json:"user_id"`
	AccommodationID int64         `json:"accommodation_id"`
	CheckIn         time.Time     `json:"check_in_date"`
	CheckOut        time.Time     `json:"check_out_date"`
	Guests          int           `json:"number_of_guests"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Blocking reports whether the booking holds its date range against
// other reservation attempts.
func (s BookingStatus) Blocking() bool {
	return s == BookingPending || s == BookingApproved
}

// Terminal reports whether no further transition may leave s.
func (s BookingStatus) Terminal() bool {
	return s == BookingRejected || s == BookingCancelled
}

// Overlaps applies the half-open interval test: touching dates (one
// stay's check-out equal to another's check-in) do not conflict.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn)
}
