package handlers

import (
	"net/http"
	"time"

	"eventease/internal/backend"
	"eventease/internal/models"
	"eventease/internal/views"

	"github.com/gin-gonic/gin"
)

// Dashboard - GET /dashboard
// Сводная страница: каждый блок загружается независимо, ошибка одного
// блока не валит страницу целиком.
func (h *Handlers) Dashboard(c *gin.Context) {
	s := h.sess(c)
	ctx := c.Request.Context()

	data := gin.H{"Title": "Dashboard"}

	if me, err := h.backend.Me(ctx, s.Token); err == nil {
		data["Username"] = me.Username
	}

	var events []models.Event
	if page, err := h.backend.ListEvents(ctx, s.Token, backend.EventQuery{Size: 100}); err == nil {
		events = page.Content
	}
	data["EventCount"] = len(events)
	data["UpcomingEvents"] = views.FilterEvents(events, "upcoming", time.Now())

	var bookings []models.Booking
	if list, err := h.backend.MyBookings(ctx, s.Token); err == nil {
		bookings = list
	}
	data["BookingCount"] = len(bookings)

	h.render(c, http.StatusOK, "dashboard.html", data)
}
