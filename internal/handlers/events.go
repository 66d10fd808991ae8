package handlers

import (
	"net/http"
	"strconv"

	"eventease/internal/backend"
	"eventease/internal/models"
	"eventease/internal/views"

	"github.com/gin-gonic/gin"
)

// EventsPage - GET /events
// Публичный список событий. Поиск и scope (upcoming/past) обрабатывает
// бэкенд, у которого этот список пагинирован.
func (h *Handlers) EventsPage(c *gin.Context) {
	s := h.sess(c)

	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	if pageNum < 0 {
		pageNum = 0
	}
	query := c.Query("q")
	scope := c.Query("scope")
	if scope != "upcoming" && scope != "past" {
		scope = ""
	}

	page, err := h.backend.ListEvents(c.Request.Context(), s.Token, backend.EventQuery{
		Query: query,
		Scope: scope,
		Page:  pageNum,
		Size:  10,
	})
	if err != nil {
		h.render(c, http.StatusOK, "events.html", gin.H{
			"Title": "Events",
			"Err":   errorMessage(err, "Failed to load events"),
		})
		return
	}

	h.render(c, http.StatusOK, "events.html", gin.H{
		"Title": "Events",
		"Page":  page,
		"Query": query,
		"Scope": scope,
		"Err":   c.Query("err"),
	})
}

// eventForm binds and validates the shared event form, converting the
// datetime-local inputs to UTC RFC 3339 at submit time.
func eventForm(c *gin.Context) (*models.EventRequest, string) {
	req := &models.EventRequest{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
	}
	start := c.PostForm("startTime")
	end := c.PostForm("endTime")

	if req.Name == "" || start == "" || end == "" {
		return nil, "Please fill in all required fields"
	}
	if err := views.ValidateEventTimes(start, end); err != nil {
		return nil, err.Error()
	}

	var err error
	if req.StartTime, err = views.ParseLocalTime(start); err != nil {
		return nil, "Invalid start time"
	}
	if req.EndTime, err = views.ParseLocalTime(end); err != nil {
		return nil, "Invalid end time"
	}
	return req, ""
}

// CreateEvent - POST /events
func (h *Handlers) CreateEvent(c *gin.Context) {
	s := h.sess(c)

	back := c.DefaultPostForm("back", "/events")
	req, msg := eventForm(c)
	if msg != "" {
		redirectErr(c, back, msg)
		return
	}

	if err := h.backend.CreateEvent(c.Request.Context(), s.Token, req); err != nil {
		redirectErr(c, back, errorMessage(err, "Create failed"))
		return
	}

	redirect(c, back, "Event created successfully")
}

// UpdateEvent - POST /events/:id
func (h *Handlers) UpdateEvent(c *gin.Context) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/events", "")
		return
	}

	back := c.DefaultPostForm("back", "/events")
	req, msg := eventForm(c)
	if msg != "" {
		redirectErr(c, back, msg)
		return
	}

	if err := h.backend.UpdateEvent(c.Request.Context(), s.Token, id, req); err != nil {
		redirectErr(c, back, errorMessage(err, "Update failed"))
		return
	}

	redirect(c, back, "Event updated successfully")
}

// PublishEvent - POST /events/:id/publish
func (h *Handlers) PublishEvent(c *gin.Context) {
	h.eventTransition(c, "publish")
}

// CancelEvent - POST /events/:id/cancel
func (h *Handlers) CancelEvent(c *gin.Context) {
	h.eventTransition(c, "cancel")
}

func (h *Handlers) eventTransition(c *gin.Context, action string) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/events", "")
		return
	}
	back := c.DefaultPostForm("back", "/events")

	switch action {
	case "publish":
		err = h.backend.PublishEvent(c.Request.Context(), s.Token, id)
	case "cancel":
		err = h.backend.CancelEvent(c.Request.Context(), s.Token, id)
	}
	if err != nil {
		redirectErr(c, back, errorMessage(err, action+" failed"))
		return
	}

	if action == "publish" {
		redirect(c, back, "Event published successfully")
	} else {
		redirect(c, back, "Event cancelled")
	}
}

// DeleteEvent - POST /events/:id/delete
func (h *Handlers) DeleteEvent(c *gin.Context) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/events", "")
		return
	}
	back := c.DefaultPostForm("back", "/events")

	if err := h.backend.DeleteEvent(c.Request.Context(), s.Token, id); err != nil {
		redirectErr(c, back, errorMessage(err, "Delete failed"))
		return
	}

	redirect(c, back, "Event deleted")
}

// MyEventsPage - GET /my-events
// Страница организатора: собственные события плюс форма создания.
func (h *Handlers) MyEventsPage(c *gin.Context) {
	s := h.sess(c)

	events, err := h.backend.MyEvents(c.Request.Context(), s.Token)
	if err != nil {
		h.render(c, http.StatusOK, "my_events.html", gin.H{
			"Title": "My Events",
			"Err":   errorMessage(err, "Failed to load events"),
		})
		return
	}

	h.render(c, http.StatusOK, "my_events.html", gin.H{
		"Title":  "My Events",
		"Events": events,
		"Err":    c.Query("err"),
	})
}
