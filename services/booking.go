package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/AchilleKettyetta/bstay/models"
	"github.com/AchilleKettyetta/bstay/storage"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrPropertyNotFound = errors.New("property not found")
	ErrInvalidDateRange = errors.New("invalid date range")
)

const dateLayout = "2006-01-02"

// BookingEngine turns a stay request from the logged-in user into a
// confirmed reservation.
type BookingEngine struct {
	store *storage.Store
}

func NewBookingEngine(store *storage.Store) *BookingEngine {
	return &BookingEngine{store: store}
}

func (be *BookingEngine) CreateReservation(ctx context.Context, propertyID int64, checkin, checkout string) (*models.Reservation, error) {
	user := be.store.CurrentUser()
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	property, ok := be.store.GetProperty(propertyID)
	if !ok {
		return nil, ErrPropertyNotFound
	}

	nights, err := countNights(checkin, checkout)
	if err != nil {
		return nil, err
	}

	reservation := models.Reservation{
		ID:            storage.NextID(),
		UserID:        user.ID,
		PropertyID:    property.ID,
		PropertyTitle: property.Title,
		Checkin:       checkin,
		Checkout:      checkout,
		TotalPrice:    property.Price * nights,
		Status:        models.StatusConfirmed,
		BookingDate:   time.Now(),
	}
	be.store.AddReservation(ctx, reservation)
	return &reservation, nil
}

// countNights returns the stay length in whole nights, rounding partial days
// up. Checkout must be strictly after checkin, so the result is always >= 1.
func countNights(checkin, checkout string) (int, error) {
	if checkin == "" || checkout == "" {
		return 0, ErrInvalidDateRange
	}
	start, err := time.Parse(dateLayout, checkin)
	if err != nil {
		return 0, ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, checkout)
	if err != nil {
		return 0, ErrInvalidDateRange
	}
	if !end.After(start) {
		return 0, ErrInvalidDateRange
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24)), nil
}
