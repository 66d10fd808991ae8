package handlers

import (
	"context"
	"net/http"
	"strconv"

	"eventease/internal/models"

	"github.com/gin-gonic/gin"
)

var paymentStatuses = map[string]bool{
	models.PaymentPending:  true,
	models.PaymentSuccess:  true,
	models.PaymentFailed:   true,
	models.PaymentRefunded: true,
}

// PaymentsPage - GET /payments, все платежи с фильтром по статусу (админ)
func (h *Handlers) PaymentsPage(c *gin.Context) {
	s := h.sess(c)

	status := c.Query("status")
	if !paymentStatuses[status] {
		status = ""
	}

	payments, err := h.backend.ListPayments(c.Request.Context(), s.Token, status)
	if err != nil {
		h.render(c, http.StatusOK, "payments.html", gin.H{
			"Title":  "Payments",
			"Status": "",
			"Err":    errorMessage(err, "Failed to load payments"),
		})
		return
	}

	h.render(c, http.StatusOK, "payments.html", gin.H{
		"Title":    "Payments",
		"Payments": payments,
		"Status":   status,
		"Err":      c.Query("err"),
	})
}

// MarkPaymentSuccess - POST /payments/:id/success
func (h *Handlers) MarkPaymentSuccess(c *gin.Context) {
	h.paymentAction(c, "/payments", "Payment marked as successful", h.backend.MarkPaymentSuccess)
}

// MarkPaymentFail - POST /payments/:id/fail
func (h *Handlers) MarkPaymentFail(c *gin.Context) {
	h.paymentAction(c, "/payments", "Payment marked as failed", h.backend.MarkPaymentFail)
}

// DeletePayment - POST /payments/:id/delete
func (h *Handlers) DeletePayment(c *gin.Context) {
	h.paymentAction(c, "/payments", "Payment deleted", h.backend.DeletePayment)
}

// ApprovePayment - POST /admin/payments/:id/approve, подтверждение слипа
func (h *Handlers) ApprovePayment(c *gin.Context) {
	h.paymentAction(c, "/admin/payments", "Payment approved", h.backend.ApprovePayment)
}

// RejectPayment - POST /admin/payments/:id/reject
func (h *Handlers) RejectPayment(c *gin.Context) {
	h.paymentAction(c, "/admin/payments", "Payment rejected", h.backend.RejectPayment)
}

func (h *Handlers) paymentAction(c *gin.Context, back, okMsg string, fn func(ctx context.Context, token string, id int64) error) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, back, "")
		return
	}

	if err := fn(c.Request.Context(), s.Token, id); err != nil {
		redirectErr(c, back, errorMessage(err, "Action failed"))
		return
	}

	redirect(c, back, okMsg)
}

// AdminPaymentsPage - GET /admin/payments, ожидающие платежи со слипами
func (h *Handlers) AdminPaymentsPage(c *gin.Context) {
	s := h.sess(c)

	payments, err := h.backend.ListPayments(c.Request.Context(), s.Token, models.PaymentPending)
	if err != nil {
		h.render(c, http.StatusOK, "admin_payments.html", gin.H{
			"Title": "Slip Review",
			"Err":   errorMessage(err, "Failed to load pending payments"),
		})
		return
	}

	h.render(c, http.StatusOK, "admin_payments.html", gin.H{
		"Title":    "Slip Review",
		"Payments": payments,
		"Backend":  h.backend.BaseURL(),
		"Err":      c.Query("err"),
	})
}

// MyPaymentsPage - GET /mypayments, платежи пользователя + форма создания
func (h *Handlers) MyPaymentsPage(c *gin.Context) {
	s := h.sess(c)

	data := gin.H{
		"Title": "My Payments",
		"Err":   c.Query("err"),
	}

	payments, err := h.backend.MyPayments(c.Request.Context(), s.Token)
	if err != nil {
		data["Err"] = errorMessage(err, "Failed to load payments")
	} else {
		data["Payments"] = payments
	}

	// Бронирования нужны для выпадающего списка формы оплаты
	bookings, err := h.backend.MyBookings(c.Request.Context(), s.Token)
	if err == nil {
		data["Bookings"] = bookings
	}

	h.render(c, http.StatusOK, "my_payments.html", data)
}

// CreatePayment - POST /mypayments
func (h *Handlers) CreatePayment(c *gin.Context) {
	s := h.sess(c)

	bookingID, err := strconv.ParseInt(c.PostForm("bookingId"), 10, 64)
	if err != nil {
		redirectErr(c, "/mypayments", "Please select a booking")
		return
	}
	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil || amount <= 0 {
		redirectErr(c, "/mypayments", "Amount must be positive")
		return
	}
	method := c.PostForm("method")
	if method == "" {
		redirectErr(c, "/mypayments", "Please choose a payment method")
		return
	}

	req := &models.PaymentRequest{
		BookingID: bookingID,
		Method:    method,
		Amount:    amount,
		Reference: c.PostForm("reference"),
	}
	if err := h.backend.CreatePayment(c.Request.Context(), s.Token, req); err != nil {
		redirectErr(c, "/mypayments", errorMessage(err, "Payment failed"))
		return
	}

	redirect(c, "/mypayments", "Payment submitted")
}

// UploadSlipPage - GET /upload-slip/:bookingID
func (h *Handlers) UploadSlipPage(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingID"), 10, 64)
	if err != nil {
		redirect(c, "/mypayments", "")
		return
	}

	h.render(c, http.StatusOK, "upload_slip.html", gin.H{
		"Title":     "Upload Slip",
		"BookingID": bookingID,
		"Err":       c.Query("err"),
	})
}

// UploadSlip - POST /upload-slip/:bookingID, multipart со слипом перевода
func (h *Handlers) UploadSlip(c *gin.Context) {
	s := h.sess(c)

	bookingID, err := strconv.ParseInt(c.Param("bookingID"), 10, 64)
	if err != nil {
		redirect(c, "/mypayments", "")
		return
	}
	back := "/upload-slip/" + c.Param("bookingID")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		redirectErr(c, back, "Please choose a file")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		redirectErr(c, back, "Failed to read file")
		return
	}
	defer file.Close()

	if err := h.backend.UploadSlip(c.Request.Context(), s.Token, bookingID, fileHeader.Filename, file); err != nil {
		redirectErr(c, back, errorMessage(err, "Upload failed"))
		return
	}

	redirect(c, "/mypayments", "Slip uploaded, awaiting review")
}
