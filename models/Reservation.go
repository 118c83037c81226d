package models

import "time"

type ReservationStatus string

// Reservations are created confirmed and never transition; cancellation is
// out of scope.
const StatusConfirmed ReservationStatus = "confirmed"

type Reservation struct {
	ID            int64             `json:"id"`
	UserID        int64             `json:"userId"`
	PropertyID    int64             `json:"propertyId"`
	PropertyTitle string            `json:"propertyTitle"` // snapshot, survives later property edits
	Checkin       string            `json:"checkin"`       // YYYY-MM-DD as entered
	Checkout      string            `json:"checkout"`
	TotalPrice    int               `json:"totalPrice"`
	Status        ReservationStatus `json:"status"`
	BookingDate   time.Time         `json:"bookingDate"`
}
