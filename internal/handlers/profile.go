package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProfilePage - GET /profile
func (h *Handlers) ProfilePage(c *gin.Context) {
	s := h.sess(c)

	me, err := h.backend.Me(c.Request.Context(), s.Token)
	if err != nil {
		h.render(c, http.StatusOK, "profile.html", gin.H{
			"Title": "My Profile",
			"Err":   errorMessage(err, "Failed to load profile"),
		})
		return
	}

	h.render(c, http.StatusOK, "profile.html", gin.H{
		"Title": "My Profile",
		"Me":    me,
		"Err":   c.Query("err"),
	})
}

// UpdateEmail - POST /profile/email
func (h *Handlers) UpdateEmail(c *gin.Context) {
	s := h.sess(c)

	email := c.PostForm("email")
	if email == "" {
		redirectErr(c, "/profile", "Please enter an email")
		return
	}

	if err := h.backend.UpdateMe(c.Request.Context(), s.Token, email); err != nil {
		redirectErr(c, "/profile", errorMessage(err, "Failed to update email"))
		return
	}

	redirect(c, "/profile", "Email updated")
}

// ChangePassword - POST /profile/password
func (h *Handlers) ChangePassword(c *gin.Context) {
	s := h.sess(c)

	oldPassword := c.PostForm("oldPassword")
	newPassword := c.PostForm("newPassword")
	confirm := c.PostForm("confirm")

	if oldPassword == "" || newPassword == "" {
		redirectErr(c, "/profile", "Please fill in all password fields")
		return
	}
	if newPassword != confirm {
		redirectErr(c, "/profile", "Passwords do not match")
		return
	}

	if err := h.backend.ChangePassword(c.Request.Context(), s.Token, oldPassword, newPassword); err != nil {
		redirectErr(c, "/profile", errorMessage(err, "Failed to change password"))
		return
	}

	redirect(c, "/profile", "Password changed")
}
