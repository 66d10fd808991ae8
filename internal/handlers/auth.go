package handlers

import (
	"log/slog"
	"net/http"

	"eventease/internal/models"
	"eventease/internal/session"

	"github.com/gin-gonic/gin"
)

// LoginPage - GET /login
func (h *Handlers) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Msg": c.Query("msg")})
}

// Login - POST /login
// Аутентифицирует пользователя на бэкенде и сохраняет пару token/role.
func (h *Handlers) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Err":      "Please fill in all fields",
			"Username": username,
		})
		return
	}

	resp, err := h.backend.Login(c.Request.Context(), username, password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Err":      errorMessage(err, "Login failed"),
			"Username": username,
		})
		return
	}

	sid := session.NewSID()
	sess := session.Session{Token: resp.Token, Role: roleLabel(resp.Role)}
	if err := h.store.Set(c.Request.Context(), sid, sess); err != nil {
		slog.Error("Failed to store session", "error", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Err":      "Login failed",
			"Username": username,
		})
		return
	}

	c.SetCookie(h.cookieName, sid, 0, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout - POST /logout
// Очищает сохраненную сессию и возвращает на страницу входа.
func (h *Handlers) Logout(c *gin.Context) {
	if sid, err := c.Cookie(h.cookieName); err == nil && sid != "" {
		if err := h.store.Clear(c.Request.Context(), sid); err != nil {
			slog.Error("Failed to clear session", "error", err)
		}
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}

// RegisterPage - GET /register
func (h *Handlers) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// Register - POST /register
func (h *Handlers) Register(c *gin.Context) {
	req := models.RegisterRequest{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Role:     c.PostForm("role"),
	}
	confirm := c.PostForm("confirm")

	renderErr := func(msg string) {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Err":      msg,
			"Username": req.Username,
			"Email":    req.Email,
			"FormRole": req.Role,
		})
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		renderErr("Please fill in all fields")
		return
	}
	if req.Password != confirm {
		renderErr("Passwords do not match")
		return
	}
	switch req.Role {
	case models.RoleUser, models.RoleOrganizer, models.RoleVendor:
	default:
		req.Role = models.RoleUser
	}

	if err := h.backend.Register(c.Request.Context(), &req); err != nil {
		renderErr(errorMessage(err, "Registration failed"))
		return
	}

	redirect(c, "/login", "Account created, please login")
}

// ForgotPasswordPage - GET /forgot-password
func (h *Handlers) ForgotPasswordPage(c *gin.Context) {
	c.HTML(http.StatusOK, "forgot_password.html", gin.H{})
}

// ForgotPassword - POST /forgot-password
// При успехе бэкенд в dev-режиме возвращает токен; страница показывает
// прямую ссылку на сброс с этим токеном.
func (h *Handlers) ForgotPassword(c *gin.Context) {
	email := c.PostForm("email")
	if email == "" {
		c.HTML(http.StatusBadRequest, "forgot_password.html", gin.H{"Err": "Please enter your email"})
		return
	}

	resp, err := h.backend.ForgotPassword(c.Request.Context(), email)
	if err != nil {
		c.HTML(http.StatusOK, "forgot_password.html", gin.H{
			"Err":   errorMessage(err, "Failed to request reset"),
			"Email": email,
		})
		return
	}

	msg := resp.Message
	if msg == "" {
		msg = "Password reset link created"
	}
	c.HTML(http.StatusOK, "forgot_password.html", gin.H{
		"Msg":   msg,
		"Token": resp.Token,
		"Email": email,
	})
}

// ResetPasswordPage - GET /reset-password?token=...
func (h *Handlers) ResetPasswordPage(c *gin.Context) {
	c.HTML(http.StatusOK, "reset_password.html", gin.H{
		"Token":        c.Query("token"),
		"TokenFromURL": c.Query("token") != "",
	})
}

// ResetPassword - POST /reset-password
func (h *Handlers) ResetPassword(c *gin.Context) {
	token := c.PostForm("token")
	newPassword := c.PostForm("newPassword")

	if token == "" || newPassword == "" {
		c.HTML(http.StatusBadRequest, "reset_password.html", gin.H{
			"Err":   "Please fill in all fields",
			"Token": token,
		})
		return
	}

	if err := h.backend.ResetPassword(c.Request.Context(), token, newPassword); err != nil {
		c.HTML(http.StatusOK, "reset_password.html", gin.H{
			"Err":   errorMessage(err, "Reset failed"),
			"Token": token,
		})
		return
	}

	c.HTML(http.StatusOK, "reset_password.html", gin.H{
		"Msg": "Password reset successful. You can login now.",
	})
}
