package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.MyBookings(context.Background(), "secret-token")

	assert.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestDoSkipsAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"token":"t","role":"USER"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	resp, err := client.Login(context.Background(), "alice", "pw")

	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Equal(t, "t", resp.Token)
	assert.Equal(t, "USER", resp.Role)
}

func TestDecodeErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Event already published"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	err := client.PublishEvent(context.Background(), "tok", 1)

	apiErr, ok := AsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Event already published", apiErr.Message)
}

func TestDecodeErrorPlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte("ERROR: cannot delete yourself"))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	err := client.DeleteUser(context.Background(), "tok", 5)

	apiErr, ok := AsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, "You cannot delete your own account while logged in.", apiErr.Message)
}

func TestDecodeErrorEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	err := client.DeleteUser(context.Background(), "tok", 5)

	apiErr, ok := AsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}

func TestTransportFailureIsNotAPIError(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
	err := client.DeleteUser(context.Background(), "tok", 5)

	assert.Error(t, err)
	_, ok := AsAPIError(err)
	assert.False(t, ok)
}

func TestTranslateConflict(t *testing.T) {
	// Имя таблицы извлекается из текста ограничения
	raw := "Cannot delete or update a parent row: a foreign key constraint fails (`eventease`.`bookings`, CONSTRAINT `fk_user` FOREIGN KEY...)"
	got := TranslateConflict(raw)
	assert.Contains(t, got, "bookings")
	assert.Contains(t, got, "Cannot delete because")

	assert.Equal(t, "Cannot delete the last admin user in the system.", TranslateConflict("cannot remove the last admin"))

	// Неизвестный текст проходит без изменений
	assert.Equal(t, "quota exceeded", TranslateConflict("quota exceeded"))
}

func TestListEventsQueryEncoding(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"content":[],"number":0,"totalPages":0,"totalElements":0}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	page, err := client.ListEvents(context.Background(), "tok", EventQuery{
		Query: "rock fest",
		Scope: "upcoming",
		Page:  2,
		Size:  10,
	})

	assert.NoError(t, err)
	assert.NotNil(t, page)
	assert.Contains(t, gotQuery, "q=rock+fest")
	assert.Contains(t, gotQuery, "scope=upcoming")
	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "size=10")
}

func TestForgotPasswordDevToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/forgot-password", r.URL.Path)
		w.Write([]byte(`{"message":"Reset link created","token":"dev-reset-token"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	resp, err := client.ForgotPassword(context.Background(), "alice@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "Reset link created", resp.Message)
	assert.Equal(t, "dev-reset-token", resp.Token)
}

func TestUploadSlipMultipart(t *testing.T) {
	var gotContentType, gotPath string
	var gotFile string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		file, header, err := r.FormFile("file")
		if assert.NoError(t, err) {
			defer file.Close()
			buf := make([]byte, 64)
			n, _ := file.Read(buf)
			gotFile = header.Filename + ":" + string(buf[:n])
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	err := client.UploadSlip(context.Background(), "tok", 7, "slip.png", strings.NewReader("png-bytes"))

	assert.NoError(t, err)
	assert.Contains(t, gotContentType, "multipart/form-data")
	assert.Equal(t, "/api/payments/bookings/7/bank-transfer", gotPath)
	assert.Equal(t, "slip.png:png-bytes", gotFile)
}

func TestUnreadCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notifications/unread-count", r.URL.Path)
		w.Write([]byte(`3`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	count, err := client.UnreadCount(context.Background(), "tok")

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}
