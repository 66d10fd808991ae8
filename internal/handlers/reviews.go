package handlers

import (
	"net/http"
	"strconv"

	"eventease/internal/backend"
	"eventease/internal/models"
	"eventease/internal/views"

	"github.com/gin-gonic/gin"
)

// ReviewsPage - GET /reviews?event=, отзывы по выбранному событию
func (h *Handlers) ReviewsPage(c *gin.Context) {
	s := h.sess(c)
	ctx := c.Request.Context()

	data := gin.H{
		"Title":    "Reviews",
		"Username": "",
		"Err":      c.Query("err"),
	}

	page, err := h.backend.ListEvents(ctx, s.Token, backend.EventQuery{Size: 100})
	if err != nil {
		data["Err"] = errorMessage(err, "Failed to load events")
		h.render(c, http.StatusOK, "reviews.html", data)
		return
	}
	data["Events"] = page.Content

	// Имя автора нужно для проверки прав на редактирование своих отзывов
	if me, err := h.backend.Me(ctx, s.Token); err == nil {
		data["Username"] = me.Username
	}

	if raw := c.Query("event"); raw != "" {
		eventID, perr := strconv.ParseInt(raw, 10, 64)
		if perr == nil {
			reviews, err := h.backend.EventReviews(ctx, s.Token, eventID)
			if err != nil {
				data["Err"] = errorMessage(err, "Failed to load reviews")
			} else {
				data["Reviews"] = reviews
				data["SelectedEvent"] = eventID
			}
		}
	}

	h.render(c, http.StatusOK, "reviews.html", data)
}

func reviewForm(c *gin.Context) (*models.ReviewRequest, string) {
	eventID, err := strconv.ParseInt(c.PostForm("eventId"), 10, 64)
	if err != nil {
		return nil, "Please select an event"
	}
	rating, err := strconv.Atoi(c.PostForm("rating"))
	if err != nil {
		return nil, "Please choose a rating"
	}
	if err := views.ValidateRating(rating); err != nil {
		return nil, err.Error()
	}

	return &models.ReviewRequest{
		EventID: eventID,
		Rating:  rating,
		Comment: c.PostForm("comment"),
	}, ""
}

// CreateReview - POST /reviews
func (h *Handlers) CreateReview(c *gin.Context) {
	s := h.sess(c)

	back := "/reviews?event=" + c.PostForm("eventId")
	req, msg := reviewForm(c)
	if msg != "" {
		redirectErr(c, back, msg)
		return
	}

	if err := h.backend.CreateReview(c.Request.Context(), s.Token, req); err != nil {
		redirectErr(c, back, errorMessage(err, "Failed to submit review"))
		return
	}

	redirect(c, back, "Review submitted")
}

// UpdateReview - POST /reviews/:id
func (h *Handlers) UpdateReview(c *gin.Context) {
	s := h.sess(c)

	back := "/reviews?event=" + c.PostForm("eventId")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/reviews", "")
		return
	}

	req, msg := reviewForm(c)
	if msg != "" {
		redirectErr(c, back, msg)
		return
	}

	if err := h.backend.UpdateReview(c.Request.Context(), s.Token, id, req); err != nil {
		redirectErr(c, back, errorMessage(err, "Failed to update review"))
		return
	}

	redirect(c, back, "Review updated")
}

// DeleteReview - POST /reviews/:id/delete
func (h *Handlers) DeleteReview(c *gin.Context) {
	s := h.sess(c)

	back := "/reviews?event=" + c.PostForm("eventId")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/reviews", "")
		return
	}

	if err := h.backend.DeleteReview(c.Request.Context(), s.Token, id); err != nil {
		redirectErr(c, back, errorMessage(err, "Failed to delete review"))
		return
	}

	redirect(c, back, "Review deleted")
}
