package views

import (
	"testing"
	"time"

	"eventease/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAvailable(t *testing.T) {
	tt := models.TicketType{Capacity: 100, Sold: 98}
	assert.Equal(t, 2, Available(tt))

	assert.Zero(t, Available(models.TicketType{Capacity: 50, Sold: 50}))
}

func TestTotalPrice(t *testing.T) {
	tt := models.TicketType{Price: 25.5}

	assert.Equal(t, 76.5, TotalPrice(tt, 3))
	assert.Zero(t, TotalPrice(tt, 0))
	assert.Zero(t, TotalPrice(tt, -1))
}

func TestAnyPurchasable(t *testing.T) {
	soldOut := []models.TicketType{
		{Capacity: 10, Sold: 10},
		{Capacity: 5, Sold: 5},
	}
	assert.False(t, AnyPurchasable(soldOut))

	soldOut[1].Sold = 4
	assert.True(t, AnyPurchasable(soldOut))

	assert.False(t, AnyPurchasable(nil))
}

func TestCheckBookingQuantity(t *testing.T) {
	tt := models.TicketType{Capacity: 100, Sold: 98}

	assert.NoError(t, CheckBookingQuantity(tt, 1))
	assert.NoError(t, CheckBookingQuantity(tt, 2))

	err := CheckBookingQuantity(tt, 3)
	assert.Error(t, err)
	assert.Equal(t, "Only 2 tickets available for this type", err.Error())

	assert.Error(t, CheckBookingQuantity(tt, 0))
}

func TestFindTicketType(t *testing.T) {
	types := []models.TicketType{
		{ID: 1, Name: "Standard"},
		{ID: 2, Name: "VIP"},
	}

	tt, ok := FindTicketType(types, 2)
	assert.True(t, ok)
	assert.Equal(t, "VIP", tt.Name)

	_, ok = FindTicketType(types, 99)
	assert.False(t, ok)
}

func TestParseLocalTime(t *testing.T) {
	got, err := ParseLocalTime("2026-06-01T18:30")
	assert.NoError(t, err)

	// Результат всегда в UTC RFC 3339
	parsed, perr := time.Parse(time.RFC3339, got)
	assert.NoError(t, perr)
	assert.Equal(t, time.UTC, parsed.Location())

	want := time.Date(2026, 6, 1, 18, 30, 0, 0, time.Local).UTC()
	assert.True(t, parsed.Equal(want))

	_, err = ParseLocalTime("not-a-date")
	assert.Error(t, err)
}

func TestValidateEventTimes(t *testing.T) {
	assert.NoError(t, ValidateEventTimes("2026-06-01T10:00", "2026-06-01T12:00"))

	err := ValidateEventTimes("2026-06-01T12:00", "2026-06-01T10:00")
	assert.Error(t, err)

	// Равные значения тоже недопустимы
	assert.Error(t, ValidateEventTimes("2026-06-01T10:00", "2026-06-01T10:00"))
	assert.Error(t, ValidateEventTimes("garbage", "2026-06-01T10:00"))
}

func TestCanEditReview(t *testing.T) {
	review := models.Review{AuthorUsername: "alice"}

	assert.True(t, CanEditReview(review, "alice"))
	assert.False(t, CanEditReview(review, "bob"))
	assert.False(t, CanEditReview(review, ""))
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, ValidateRating(rating))
	}
	assert.Error(t, ValidateRating(0))
	assert.Error(t, ValidateRating(6))
}
