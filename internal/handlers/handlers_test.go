package handlers

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"eventease/internal/backend"
	"eventease/internal/middleware"
	"eventease/internal/session"
	"eventease/internal/templates"
	"eventease/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "eventease_session"

// recordingBackend мокает REST бэкенд и записывает все входящие вызовы
type recordingBackend struct {
	mu       sync.Mutex
	requests []string
	server   *httptest.Server
}

func newRecordingBackend(t *testing.T) *recordingBackend {
	rb := &recordingBackend{}
	rb.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rb.mu.Lock()
		rb.requests = append(rb.requests, r.Method+" "+r.URL.Path)
		rb.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/api/auth/login":
			w.Write([]byte(`{"token":"backend-token","role":"ADMIN"}`))
		case strings.HasSuffix(r.URL.Path, "/ticket-types"):
			w.Write([]byte(`[{"id":1,"eventId":1,"name":"Standard","price":10,"capacity":100,"sold":98}]`))
		case r.URL.Path == "/api/notifications/unread-count":
			w.Write([]byte(`0`))
		case r.URL.Path == "/api/notifications/latest":
			w.Write([]byte(`[]`))
		case r.URL.Path == "/api/bookings/mine":
			w.Write([]byte(`[]`))
		case r.URL.Path == "/api/events":
			w.Write([]byte(`{"content":[],"number":0,"totalPages":0,"totalElements":0}`))
		case r.URL.Path == "/api/payments":
			w.Write([]byte(`[{"id":5,"bookingId":2,"payerUsername":"alice","method":"CARD","amount":20,"status":"PENDING"}]`))
		case r.URL.Path == "/api/users/me":
			w.Write([]byte(`{"id":1,"username":"alice","email":"alice@example.com","role":"USER"}`))
		case r.URL.Path == "/api/reviews/event/1":
			w.Write([]byte(`[{"id":10,"eventId":1,"authorUsername":"alice","rating":5,"comment":"Great"},{"id":11,"eventId":1,"authorUsername":"bob","rating":3,"comment":"OK"}]`))
		default:
			w.Write([]byte(`{}`))
		}
	}))
	t.Cleanup(rb.server.Close)
	return rb
}

func (rb *recordingBackend) calls() []string {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return append([]string(nil), rb.requests...)
}

func (rb *recordingBackend) called(call string) bool {
	for _, c := range rb.calls() {
		if c == call {
			return true
		}
	}
	return false
}

func setupRouter(rb *recordingBackend) (*gin.Engine, *session.MemoryStore) {
	gin.SetMode(gin.TestMode)

	client := backend.NewClient(backend.Config{BaseURL: rb.server.URL})
	store := session.NewMemoryStore()
	h := NewHandlers(client, store, testCookie)

	r := gin.New()
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"add":           func(a, b int) int { return a + b },
		"sub":           func(a, b int) int { return a - b },
		"available":     views.Available,
		"total":         views.TotalPrice,
		"canEditReview": views.CanEditReview,
	}).ParseFS(templates.FS, "*.html"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	authed := r.Group("/")
	authed.Use(middleware.RequireSession(store, testCookie))
	{
		authed.GET("/dashboard", h.Dashboard)
		authed.GET("/bookings", h.BookingsPage)
		authed.GET("/events/:id/book", h.BookingFormPage)
		authed.POST("/events/:id/book", h.CreateBooking)
		authed.POST("/admin/payments/:id/approve", h.ApprovePayment)
		authed.POST("/users/:id/delete", h.DeleteUser)
		authed.GET("/payments", h.PaymentsPage)
		authed.GET("/reviews", h.ReviewsPage)
	}

	return r, store
}

// seedSession кладет готовую сессию в хранилище и возвращает cookie
func seedSession(t *testing.T, store *session.MemoryStore, role string) *http.Cookie {
	sid := session.NewSID()
	err := store.Set(context.Background(), sid, session.Session{Token: "backend-token", Role: role})
	require.NoError(t, err)
	return &http.Cookie{Name: testCookie, Value: sid}
}

func postForm(r *gin.Engine, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getPage(r *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginStoresSessionAndRedirects(t *testing.T) {
	rb := newRecordingBackend(t)
	r, store := setupRouter(rb)

	w := postForm(r, "/login", url.Values{"username": {"alice"}, "password": {"pw"}}, nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	assert.True(t, rb.called("POST /api/auth/login"))

	// Cookie несет непрозрачный sid, а не сам токен
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookie, cookies[0].Name)
	assert.NotEqual(t, "backend-token", cookies[0].Value)

	sess, err := store.Get(context.Background(), cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "backend-token", sess.Token)
	assert.Equal(t, "ADMIN", sess.Role)
}

func TestLoginMissingFieldsRerendersForm(t *testing.T) {
	rb := newRecordingBackend(t)
	r, _ := setupRouter(rb)

	w := postForm(r, "/login", url.Values{"username": {"alice"}}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill in all fields")
	assert.False(t, rb.called("POST /api/auth/login"))
}

func TestRequireSessionRedirectsToLogin(t *testing.T) {
	rb := newRecordingBackend(t)
	r, _ := setupRouter(rb)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Empty(t, rb.calls())
}

func TestLogoutClearsSession(t *testing.T) {
	rb := newRecordingBackend(t)
	r, store := setupRouter(rb)
	cookie := seedSession(t, store, "USER")

	w := postForm(r, "/logout", url.Values{}, cookie)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	_, err := store.Get(context.Background(), cookie.Value)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestCreateBookingQuantityGuardSkipsBackend(t *testing.T) {
	rb := newRecordingBackend(t)
	r, store := setupRouter(rb)
	cookie := seedSession(t, store, "USER")

	// Свободно только 2 билета, запрашиваем 3
	w := postForm(r, "/events/1/book", url.Values{
		"ticketTypeId": {"1"},
		"quantity":     {"3"},
	}, cookie)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	assert.Contains(t, location, "/events/1/book")
	assert.Contains(t, location, url.QueryEscape("Only 2 tickets available for this type"))

	// Бэкенд не получал запрос на создание бронирования
	assert.False(t, rb.called("POST /api/bookings"))
}

func TestCreateBookingWithinAvailability(t *testing.T) {
	rb := newRecordingBackend(t)
	r, store := setupRouter(rb)
	cookie := seedSession(t, store, "USER")

	w := postForm(r, "/events/1/book", url.Values{
		"ticketTypeId": {"1"},
		"quantity":     {"2"},
	}, cookie)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/bookings", strings.SplitN(w.Header().Get("Location"), "?", 2)[0])
	assert.True(t, rb.called("POST /api/bookings"))
}

func TestApprovePaymentForwardsAndRedirects(t *testing.T) {
	rb := newRecordingBackend(t)
	r, store := setupRouter(rb)
	cookie := seedSession(t, store, "ADMIN")

	w := postForm(r, "/admin/payments/5/approve", url.Values{}, cookie)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/admin/payments")
	assert.True(t, rb.called("POST /api/payments/5/approve"))
}

func TestDeleteUserBackendErrorSurfaced(t *testing.T) {
	rb := &recordingBackend{}
	rb.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rb.mu.Lock()
		rb.requests = append(rb.requests, r.Method+" "+r.URL.Path)
		rb.mu.Unlock()
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Cannot delete the last admin user in the system."}`))
	}))
	t.Cleanup(rb.server.Close)

	r, store := setupRouter(rb)
	cookie := seedSession(t, store, "ADMIN")

	w := postForm(r, "/users/7/delete", url.Values{}, cookie)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	assert.Contains(t, location, "/users")
	assert.Contains(t, location, url.QueryEscape("Cannot delete the last admin user in the system."))
	assert.True(t, rb.called("DELETE /api/users/7"))
}

func TestPaymentStatusTransitionsAskForConfirmation(t *testing.T) {
	rb := newRecordingBackend(t)
	r, store := setupRouter(rb)
	cookie := seedSession(t, store, "ADMIN")

	w := getPage(r, "/payments", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "/payments/5/success")
	assert.Contains(t, body, "Mark payment #5 as paid?")
	assert.Contains(t, body, "/payments/5/fail")
	assert.Contains(t, body, "Mark payment #5 as failed?")
}

func TestPaymentActionsHiddenWithoutCapability(t *testing.T) {
	rb := newRecordingBackend(t)
	r, store := setupRouter(rb)
	cookie := seedSession(t, store, "USER")

	w := getPage(r, "/payments", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	// Обычная роль не видит ни список, ни кнопки переходов
	body := w.Body.String()
	assert.NotContains(t, body, "/payments/5/success")
	assert.NotContains(t, body, "Mark success")
	assert.Contains(t, body, "administrators only")
}

func TestBookingFormShowsRunningTotal(t *testing.T) {
	rb := newRecordingBackend(t)
	r, store := setupRouter(rb)
	cookie := seedSession(t, store, "USER")

	w := getPage(r, "/events/1/book", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "data-price")
	assert.Contains(t, body, `id="total-price"`)
	// Начальная сумма: цена 10.00 за один билет
	assert.Contains(t, body, "10.00")
}

func TestPagesCarrySubmitDisableGuard(t *testing.T) {
	rb := newRecordingBackend(t)
	r, store := setupRouter(rb)
	cookie := seedSession(t, store, "USER")

	// Гард повторной отправки присутствует и на страницах за сессией,
	// и на страницах авторизации
	for _, w := range []*httptest.ResponseRecorder{
		getPage(r, "/bookings", cookie),
		getPage(r, "/login", nil),
	} {
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "document.addEventListener('submit'")
		assert.Contains(t, body, "b.disabled = true")
	}
}

func TestReviewEditVisibleOnlyToAuthor(t *testing.T) {
	rb := newRecordingBackend(t)
	r, store := setupRouter(rb)
	cookie := seedSession(t, store, "USER")

	w := getPage(r, "/reviews?event=1", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	// alice видит правку только своего отзыва, не отзыва bob
	body := w.Body.String()
	assert.Contains(t, body, "/reviews/10/delete")
	assert.NotContains(t, body, "/reviews/11/delete")
}
