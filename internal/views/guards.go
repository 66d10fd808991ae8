package views

import (
	"fmt"
	"time"

	"eventease/internal/models"
)

// Local guards are UX short-circuits performed before any network call. They
// are never authoritative: the backend re-validates, and a backend rejection
// after a guard passes must still be surfaced with the form left open.

// Available derives the remaining capacity of a ticket type.
func Available(tt models.TicketType) int {
	return tt.Capacity - tt.Sold
}

// TotalPrice is display only; the backend computes the charged amount.
func TotalPrice(tt models.TicketType, quantity int) float64 {
	if quantity < 0 {
		return 0
	}
	return tt.Price * float64(quantity)
}

// AnyPurchasable reports whether at least one ticket type still has
// availability, controlling whether the booking form can be submitted at all.
func AnyPurchasable(types []models.TicketType) bool {
	for _, tt := range types {
		if Available(tt) > 0 {
			return true
		}
	}
	return false
}

// CheckBookingQuantity rejects a booking locally when the requested quantity
// exceeds the remaining availability of the selected ticket type.
func CheckBookingQuantity(tt models.TicketType, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	if available := Available(tt); quantity > available {
		return fmt.Errorf("Only %d tickets available for this type", available)
	}
	return nil
}

// FindTicketType locates the selected type in the fetched collection.
func FindTicketType(types []models.TicketType, id int64) (models.TicketType, bool) {
	for _, tt := range types {
		if tt.ID == id {
			return tt, true
		}
	}
	return models.TicketType{}, false
}

// ParseLocalTime converts a datetime-local form value into UTC RFC 3339 for
// the backend. Conversion happens at submit time, not per keystroke.
func ParseLocalTime(value string) (string, error) {
	t, err := time.ParseInLocation("2006-01-02T15:04", value, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date/time %q", value)
	}
	return t.UTC().Format(time.RFC3339), nil
}

// ValidateEventTimes rejects an event whose end does not follow its start.
func ValidateEventTimes(start, end string) error {
	s, err := time.ParseInLocation("2006-01-02T15:04", start, time.Local)
	if err != nil {
		return fmt.Errorf("invalid start time")
	}
	e, err := time.ParseInLocation("2006-01-02T15:04", end, time.Local)
	if err != nil {
		return fmt.Errorf("invalid end time")
	}
	if !e.After(s) {
		return fmt.Errorf("end time must be after start time")
	}
	return nil
}

// CanEditReview implements the author-only convenience check; the backend
// enforces the real rule.
func CanEditReview(review models.Review, username string) bool {
	return username != "" && review.AuthorUsername == username
}

// ValidateRating keeps ratings inside the 1-5 scale.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}
