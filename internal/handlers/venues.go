package handlers

import (
	"net/http"
	"strconv"

	"eventease/internal/models"
	"eventease/internal/views"

	"github.com/gin-gonic/gin"
)

// VenuesPage - GET /venues, каталог площадок с локальным фильтром
func (h *Handlers) VenuesPage(c *gin.Context) {
	s := h.sess(c)

	venues, err := h.backend.ListVenues(c.Request.Context(), s.Token, "")
	if err != nil {
		h.render(c, http.StatusOK, "venues.html", gin.H{
			"Title": "Venues",
			"Err":   errorMessage(err, "Failed to load venues"),
		})
		return
	}

	query := c.Query("q")
	h.render(c, http.StatusOK, "venues.html", gin.H{
		"Title":  "Venues",
		"Venues": views.FilterVenues(venues, query),
		"Query":  query,
		"Err":    c.Query("err"),
	})
}

func venueForm(c *gin.Context) (*models.VenueRequest, string) {
	name := c.PostForm("name")
	if name == "" {
		return nil, "Venue name is required"
	}
	req := &models.VenueRequest{
		Name:        name,
		Address:     c.PostForm("address"),
		Description: c.PostForm("description"),
	}
	if raw := c.PostForm("capacity"); raw != "" {
		capacity, err := strconv.Atoi(raw)
		if err != nil || capacity < 0 {
			return nil, "Capacity must be a non-negative number"
		}
		req.Capacity = capacity
	}
	return req, ""
}

// CreateVenue - POST /venues
func (h *Handlers) CreateVenue(c *gin.Context) {
	s := h.sess(c)

	req, msg := venueForm(c)
	if msg != "" {
		redirectErr(c, "/venues", msg)
		return
	}

	if err := h.backend.CreateVenue(c.Request.Context(), s.Token, req); err != nil {
		redirectErr(c, "/venues", errorMessage(err, "Create failed"))
		return
	}

	redirect(c, "/venues", "Venue submitted for approval")
}

// UpdateVenue - POST /venues/:id
func (h *Handlers) UpdateVenue(c *gin.Context) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/venues", "")
		return
	}

	req, msg := venueForm(c)
	if msg != "" {
		redirectErr(c, "/venues", msg)
		return
	}

	if err := h.backend.UpdateVenue(c.Request.Context(), s.Token, id, req); err != nil {
		redirectErr(c, "/venues", errorMessage(err, "Update failed"))
		return
	}

	redirect(c, "/venues", "Venue updated")
}

// ApproveVenue - POST /venues/:id/approve (админ)
func (h *Handlers) ApproveVenue(c *gin.Context) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/venues", "")
		return
	}

	if err := h.backend.ApproveVenue(c.Request.Context(), s.Token, id); err != nil {
		redirectErr(c, "/venues", errorMessage(err, "Approve failed"))
		return
	}

	redirect(c, "/venues", "Venue approved")
}

// DeleteVenue - POST /venues/:id/delete
func (h *Handlers) DeleteVenue(c *gin.Context) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/venues", "")
		return
	}

	if err := h.backend.DeleteVenue(c.Request.Context(), s.Token, id); err != nil {
		redirectErr(c, "/venues", errorMessage(err, "Delete failed"))
		return
	}

	redirect(c, "/venues", "Venue deleted")
}
