package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"eventease/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionFromContext returns the session loaded by RequireSession.
func SessionFromContext(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}

// RequireSession загружает сессию из cookie и кладет ее в контекст.
// Запросы без сессии перенаправляются на страницу входа.
func RequireSession(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || sid == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		sess, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// Logger middleware для структурированного логирования запросов
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		logFields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		if c.Writer.Status() >= 400 {
			if len(c.Errors) > 0 {
				logFields = append(logFields, "error", c.Errors.String())
			}
			slog.Error("Request completed with error", logFields...)
		} else {
			slog.Debug("Request completed", logFields...)
		}
	}
}

// Recovery middleware для восстановления после паники
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("PANIC recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
		)

		if !c.Writer.Written() {
			c.String(http.StatusInternalServerError, "Internal server error")
		}
	})
}
