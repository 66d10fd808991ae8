// Package handlers contains the page data controllers: one per domain
// resource. Every page fetches its collection from the backend on render,
// derives its visible state through internal/views, and turns form posts into
// backend calls. Mutations redirect back to the list route on success so the
// next render is a fresh read; on failure the page re-renders with the error
// and the form left populated.
package handlers

import (
	"net/http"
	"net/url"

	"eventease/internal/backend"
	"eventease/internal/middleware"
	"eventease/internal/models"
	"eventease/internal/session"
	"eventease/internal/views"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	backend    *backend.Client
	store      session.Store
	cookieName string
}

func NewHandlers(client *backend.Client, store session.Store, cookieName string) *Handlers {
	return &Handlers{
		backend:    client,
		store:      store,
		cookieName: cookieName,
	}
}

// sess returns the session placed in the context by the middleware. Handlers
// behind RequireSession can rely on it being present.
func (h *Handlers) sess(c *gin.Context) session.Session {
	s, _ := middleware.SessionFromContext(c)
	return s
}

// render wraps c.HTML with the layout data every protected page needs: the
// role-gated sidebar, capabilities, the transient message from the query
// string and the notification bell. Bell reads are best-effort; a failure
// hides the badge rather than breaking the page.
func (h *Handlers) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	s := h.sess(c)
	data["Role"] = s.Role
	data["Caps"] = views.ResolveCapabilities(s.Role)
	data["NavLinks"] = views.NavLinks(s.Role)
	if _, ok := data["Msg"]; !ok {
		data["Msg"] = c.Query("msg")
	}

	if s.Token != "" {
		ctx := c.Request.Context()
		if count, err := h.backend.UnreadCount(ctx, s.Token); err == nil {
			data["UnreadCount"] = count
		}
		if latest, err := h.backend.LatestNotifications(ctx, s.Token); err == nil {
			data["LatestNotifications"] = latest
		}
	}

	c.HTML(status, name, data)
}

// redirect sends the browser back to a list route with a transient message.
func redirect(c *gin.Context, path, msg string) {
	if msg != "" {
		path += "?msg=" + url.QueryEscape(msg)
	}
	c.Redirect(http.StatusSeeOther, path)
}

// redirectErr is redirect's counterpart for failed mutations that still
// return to the list (the page renders the error beside fresh data).
func redirectErr(c *gin.Context, path, errMsg string) {
	if errMsg != "" {
		path += "?err=" + url.QueryEscape(errMsg)
	}
	c.Redirect(http.StatusSeeOther, path)
}

// errorMessage maps an error onto what the user sees: backend messages
// verbatim, transport failures as the generic fallback.
func errorMessage(err error, fallback string) string {
	if apiErr, ok := backend.AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// roleLabel guards against unknown role strings leaking into templates.
func roleLabel(role string) string {
	switch role {
	case models.RoleUser, models.RoleOrganizer, models.RoleVendor, models.RoleAdmin:
		return role
	default:
		return models.RoleUser
	}
}
