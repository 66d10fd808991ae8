package handlers

import (
	"net/http"
	"strconv"

	"eventease/internal/models"
	"eventease/internal/views"

	"github.com/gin-gonic/gin"
)

// BookingsPage - GET /bookings, бронирования текущего пользователя
func (h *Handlers) BookingsPage(c *gin.Context) {
	s := h.sess(c)

	bookings, err := h.backend.MyBookings(c.Request.Context(), s.Token)
	if err != nil {
		h.render(c, http.StatusOK, "bookings.html", gin.H{
			"Title": "My Bookings",
			"Err":   errorMessage(err, "Failed to load bookings"),
		})
		return
	}

	h.render(c, http.StatusOK, "bookings.html", gin.H{
		"Title":    "My Bookings",
		"Bookings": bookings,
		"Err":      c.Query("err"),
	})
}

// BookingFormPage - GET /events/:id/book, форма бронирования с типами билетов
func (h *Handlers) BookingFormPage(c *gin.Context) {
	s := h.sess(c)

	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/events", "")
		return
	}

	types, err := h.backend.ListTicketTypes(c.Request.Context(), s.Token, eventID)
	if err != nil {
		redirectErr(c, "/events", errorMessage(err, "Failed to load ticket types"))
		return
	}

	h.render(c, http.StatusOK, "booking_form.html", gin.H{
		"Title":       "Book Tickets",
		"EventID":     eventID,
		"TicketTypes": types,
		"Purchasable": views.AnyPurchasable(types),
		"Err":         c.Query("err"),
	})
}

// CreateBooking - POST /events/:id/book. Количество проверяется локально по
// свежему списку типов билетов; при нехватке мест запрос на бэкенд не уходит.
func (h *Handlers) CreateBooking(c *gin.Context) {
	s := h.sess(c)

	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/events", "")
		return
	}
	back := "/events/" + c.Param("id") + "/book"

	ttID, err := strconv.ParseInt(c.PostForm("ticketTypeId"), 10, 64)
	if err != nil {
		redirectErr(c, back, "Please select a ticket type")
		return
	}
	quantity, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil || quantity < 1 {
		redirectErr(c, back, "Quantity must be at least 1")
		return
	}

	types, err := h.backend.ListTicketTypes(c.Request.Context(), s.Token, eventID)
	if err != nil {
		redirectErr(c, back, errorMessage(err, "Failed to load ticket types"))
		return
	}
	tt, ok := views.FindTicketType(types, ttID)
	if !ok {
		redirectErr(c, back, "Unknown ticket type")
		return
	}
	if err := views.CheckBookingQuantity(tt, quantity); err != nil {
		redirectErr(c, back, err.Error())
		return
	}

	req := &models.BookingRequest{EventID: eventID, TicketTypeID: ttID, Quantity: quantity}
	if err := h.backend.CreateBooking(c.Request.Context(), s.Token, req); err != nil {
		redirectErr(c, back, errorMessage(err, "Booking failed"))
		return
	}

	redirect(c, "/bookings", "Booking created successfully")
}

// UpdateBooking - POST /bookings/:id, изменение количества билетов
func (h *Handlers) UpdateBooking(c *gin.Context) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/bookings", "")
		return
	}

	eventID, _ := strconv.ParseInt(c.PostForm("eventId"), 10, 64)
	ttID, _ := strconv.ParseInt(c.PostForm("ticketTypeId"), 10, 64)
	quantity, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil || quantity < 1 {
		redirectErr(c, "/bookings", "Quantity must be at least 1")
		return
	}

	req := &models.BookingRequest{EventID: eventID, TicketTypeID: ttID, Quantity: quantity}
	if err := h.backend.UpdateBooking(c.Request.Context(), s.Token, id, req); err != nil {
		redirectErr(c, "/bookings", errorMessage(err, "Update failed"))
		return
	}

	redirect(c, "/bookings", "Booking updated")
}

// DeleteBooking - POST /bookings/:id/delete
func (h *Handlers) DeleteBooking(c *gin.Context) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/bookings", "")
		return
	}

	if err := h.backend.DeleteBooking(c.Request.Context(), s.Token, id); err != nil {
		redirectErr(c, "/bookings", errorMessage(err, "Cancel failed"))
		return
	}

	redirect(c, "/bookings", "Booking cancelled")
}

// OrganizerBookingsPage - GET /organizer/bookings, бронирования по событию
// организатора. Событие выбирается из выпадающего списка MyEvents.
func (h *Handlers) OrganizerBookingsPage(c *gin.Context) {
	s := h.sess(c)

	events, err := h.backend.MyEvents(c.Request.Context(), s.Token)
	if err != nil {
		h.render(c, http.StatusOK, "organizer_bookings.html", gin.H{
			"Title": "Event Bookings",
			"Err":   errorMessage(err, "Failed to load events"),
		})
		return
	}

	data := gin.H{
		"Title":  "Event Bookings",
		"Events": events,
		"Err":    c.Query("err"),
	}

	if raw := c.Query("event"); raw != "" {
		eventID, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			bookings, err := h.backend.EventBookings(c.Request.Context(), s.Token, eventID)
			if err != nil {
				data["Err"] = errorMessage(err, "Failed to load bookings")
			} else {
				data["Bookings"] = bookings
				data["SelectedEvent"] = eventID
			}
		}
	}

	h.render(c, http.StatusOK, "organizer_bookings.html", data)
}
