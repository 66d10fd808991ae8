package handlers

import (
	"net/http"
	"strconv"

	"eventease/internal/models"

	"github.com/gin-gonic/gin"
)

// TicketTypesPage - GET /ticket-types?event=, управление типами билетов.
// События берутся из MyEvents текущего организатора.
func (h *Handlers) TicketTypesPage(c *gin.Context) {
	s := h.sess(c)

	events, err := h.backend.MyEvents(c.Request.Context(), s.Token)
	if err != nil {
		h.render(c, http.StatusOK, "ticket_types.html", gin.H{
			"Title": "Ticket Types",
			"Err":   errorMessage(err, "Failed to load events"),
		})
		return
	}

	data := gin.H{
		"Title":  "Ticket Types",
		"Events": events,
		"Err":    c.Query("err"),
	}

	if raw := c.Query("event"); raw != "" {
		eventID, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			types, err := h.backend.ListTicketTypes(c.Request.Context(), s.Token, eventID)
			if err != nil {
				data["Err"] = errorMessage(err, "Failed to load ticket types")
			} else {
				data["TicketTypes"] = types
				data["SelectedEvent"] = eventID
			}
		}
	}

	h.render(c, http.StatusOK, "ticket_types.html", data)
}

// CreateTicketType - POST /ticket-types
func (h *Handlers) CreateTicketType(c *gin.Context) {
	s := h.sess(c)

	eventID, err := strconv.ParseInt(c.PostForm("eventId"), 10, 64)
	if err != nil {
		redirectErr(c, "/ticket-types", "Please select an event")
		return
	}
	back := "/ticket-types?event=" + c.PostForm("eventId")

	name := c.PostForm("name")
	price, perr := strconv.ParseFloat(c.PostForm("price"), 64)
	capacity, cerr := strconv.Atoi(c.PostForm("capacity"))
	if name == "" || perr != nil || cerr != nil {
		redirectErr(c, back, "Please fill in all ticket type fields")
		return
	}
	if price < 0 || capacity < 1 {
		redirectErr(c, back, "Price and capacity must be positive")
		return
	}

	req := &models.TicketTypeRequest{Name: name, Price: price, Capacity: capacity}
	if err := h.backend.CreateTicketType(c.Request.Context(), s.Token, eventID, req); err != nil {
		redirectErr(c, back, errorMessage(err, "Create failed"))
		return
	}

	redirect(c, back, "Ticket type created")
}

// DeleteTicketType - POST /ticket-types/:id/delete
func (h *Handlers) DeleteTicketType(c *gin.Context) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/ticket-types", "")
		return
	}
	eventID, err := strconv.ParseInt(c.PostForm("eventId"), 10, 64)
	if err != nil {
		redirect(c, "/ticket-types", "")
		return
	}
	back := "/ticket-types?event=" + c.PostForm("eventId")

	if err := h.backend.DeleteTicketType(c.Request.Context(), s.Token, eventID, id); err != nil {
		redirectErr(c, back, errorMessage(err, "Delete failed"))
		return
	}

	redirect(c, back, "Ticket type deleted")
}
