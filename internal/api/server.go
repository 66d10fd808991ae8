package api

import (
	"html/template"
	"net/http"

	"eventease/internal/backend"
	"eventease/internal/config"
	"eventease/internal/handlers"
	"eventease/internal/middleware"
	"eventease/internal/session"
	"eventease/internal/templates"
	"eventease/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server представляет HTTP сервер дашборда
type Server struct {
	router *gin.Engine
	config *config.Config
	store  session.Store
}

// NewServer создает новый экземпляр сервера
func NewServer(cfg *config.Config, store session.Store) *Server {
	// Устанавливаем режим Gin
	gin.SetMode(cfg.GinMode)

	// Клиент внешнего бэкенда
	client := backend.NewClient(cfg.Backend)

	// Создаем роутер
	router := gin.New()

	// Шаблоны страниц со вспомогательными функциями
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"add":           func(a, b int) int { return a + b },
		"sub":           func(a, b int) int { return a - b },
		"available":     views.Available,
		"total":         views.TotalPrice,
		"canEditReview": views.CanEditReview,
	}).ParseFS(templates.FS, "*.html"))
	router.SetHTMLTemplate(tmpl)

	// Применяем middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics())

	server := &Server{
		router: router,
		config: cfg,
		store:  store,
	}

	server.setupRoutes(client)

	return server
}

// setupRoutes настраивает все роуты страниц
func (s *Server) setupRoutes(client *backend.Client) {
	h := handlers.NewHandlers(client, s.store, s.config.Session.CookieName)

	// Публичные страницы
	s.router.GET("/login", h.LoginPage)
	s.router.POST("/login", h.Login)
	s.router.POST("/logout", h.Logout)
	s.router.GET("/register", h.RegisterPage)
	s.router.POST("/register", h.Register)
	s.router.GET("/forgot-password", h.ForgotPasswordPage)
	s.router.POST("/forgot-password", h.ForgotPassword)
	s.router.GET("/reset-password", h.ResetPasswordPage)
	s.router.POST("/reset-password", h.ResetPassword)

	// Страницы за сессией
	authed := s.router.Group("/")
	authed.Use(middleware.RequireSession(s.store, s.config.Session.CookieName))
	{
		authed.GET("/dashboard", h.Dashboard)

		// Events
		authed.GET("/events", h.EventsPage)
		authed.POST("/events", h.CreateEvent)
		authed.POST("/events/:id", h.UpdateEvent)
		authed.POST("/events/:id/publish", h.PublishEvent)
		authed.POST("/events/:id/cancel", h.CancelEvent)
		authed.POST("/events/:id/delete", h.DeleteEvent)
		authed.GET("/my-events", h.MyEventsPage)

		// Bookings
		authed.GET("/events/:id/book", h.BookingFormPage)
		authed.POST("/events/:id/book", h.CreateBooking)
		authed.GET("/bookings", h.BookingsPage)
		authed.POST("/bookings/:id", h.UpdateBooking)
		authed.POST("/bookings/:id/delete", h.DeleteBooking)
		authed.GET("/organizer/bookings", h.OrganizerBookingsPage)

		// Ticket types
		authed.GET("/ticket-types", h.TicketTypesPage)
		authed.POST("/ticket-types", h.CreateTicketType)
		authed.POST("/ticket-types/:id/delete", h.DeleteTicketType)

		// Payments
		authed.GET("/payments", h.PaymentsPage)
		authed.POST("/payments/:id/success", h.MarkPaymentSuccess)
		authed.POST("/payments/:id/fail", h.MarkPaymentFail)
		authed.POST("/payments/:id/delete", h.DeletePayment)
		authed.GET("/mypayments", h.MyPaymentsPage)
		authed.POST("/mypayments", h.CreatePayment)
		authed.GET("/admin/payments", h.AdminPaymentsPage)
		authed.POST("/admin/payments/:id/approve", h.ApprovePayment)
		authed.POST("/admin/payments/:id/reject", h.RejectPayment)
		authed.GET("/upload-slip/:bookingID", h.UploadSlipPage)
		authed.POST("/upload-slip/:bookingID", h.UploadSlip)

		// Tasks
		authed.GET("/tasks", h.TasksPage)
		authed.POST("/tasks", h.CreateTask)
		authed.POST("/tasks/:id", h.UpdateTask)
		authed.POST("/tasks/:id/delete", h.DeleteTask)
		authed.GET("/my-tasks", h.MyTasksPage)
		authed.POST("/my-tasks/:id/status", h.UpdateTaskStatus)

		// Notifications
		authed.GET("/notifications", h.NotificationsPage)
		authed.POST("/notifications/:id/read", h.MarkNotificationRead)
		authed.POST("/notifications/read-all", h.MarkAllNotificationsRead)
		authed.POST("/notifications/:id/archive", h.ArchiveNotification)
		authed.GET("/admin/notifications", h.AdminNotificationsPage)
		authed.POST("/admin/notifications", h.Broadcast)

		// Users and profile
		authed.GET("/users", h.UsersPage)
		authed.POST("/users/:id/role", h.UpdateUserRole)
		authed.POST("/users/:id/delete", h.DeleteUser)
		authed.GET("/profile", h.ProfilePage)
		authed.POST("/profile/email", h.UpdateEmail)
		authed.POST("/profile/password", h.ChangePassword)

		// Vendors and venues
		authed.GET("/vendors", h.VendorsPage)
		authed.POST("/vendors", h.CreateVendor)
		authed.POST("/vendors/:id", h.UpdateVendor)
		authed.POST("/vendors/:id/approve", h.ApproveVendor)
		authed.POST("/vendors/:id/delete", h.DeleteVendor)
		authed.GET("/venues", h.VenuesPage)
		authed.POST("/venues", h.CreateVenue)
		authed.POST("/venues/:id", h.UpdateVenue)
		authed.POST("/venues/:id/approve", h.ApproveVenue)
		authed.POST("/venues/:id/delete", h.DeleteVenue)

		// Reviews
		authed.GET("/reviews", h.ReviewsPage)
		authed.POST("/reviews", h.CreateReview)
		authed.POST("/reviews/:id", h.UpdateReview)
		authed.POST("/reviews/:id/delete", h.DeleteReview)
	}

	// Health check endpoint
	s.router.GET("/health", s.healthCheck)

	// Prometheus метрики
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Неизвестные пути ведут на вход
	s.router.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/login")
	})
}

// healthCheck обрабатывает health check запросы
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "eventease-web",
		"version": "1.0.0",
	})
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	return s.router.Run(":" + s.config.Port)
}

// GetRouter возвращает роутер для тестирования
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup закрывает соединения
func (s *Server) Cleanup() error {
	if closer, ok := s.store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
