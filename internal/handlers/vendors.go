package handlers

import (
	"net/http"
	"strconv"

	"eventease/internal/models"
	"eventease/internal/views"

	"github.com/gin-gonic/gin"
)

// VendorsPage - GET /vendors, каталог поставщиков с локальным фильтром
func (h *Handlers) VendorsPage(c *gin.Context) {
	s := h.sess(c)

	vendors, err := h.backend.ListVendors(c.Request.Context(), s.Token, "")
	if err != nil {
		h.render(c, http.StatusOK, "vendors.html", gin.H{
			"Title": "Vendors",
			"Err":   errorMessage(err, "Failed to load vendors"),
		})
		return
	}

	query := c.Query("q")
	h.render(c, http.StatusOK, "vendors.html", gin.H{
		"Title":   "Vendors",
		"Vendors": views.FilterVendors(vendors, query),
		"Query":   query,
		"Err":     c.Query("err"),
	})
}

func vendorForm(c *gin.Context) (*models.VendorRequest, string) {
	name := c.PostForm("name")
	if name == "" {
		return nil, "Vendor name is required"
	}
	return &models.VendorRequest{
		Name:        name,
		Category:    c.PostForm("category"),
		Address:     c.PostForm("address"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		Description: c.PostForm("description"),
	}, ""
}

// CreateVendor - POST /vendors
func (h *Handlers) CreateVendor(c *gin.Context) {
	s := h.sess(c)

	req, msg := vendorForm(c)
	if msg != "" {
		redirectErr(c, "/vendors", msg)
		return
	}

	if err := h.backend.CreateVendor(c.Request.Context(), s.Token, req); err != nil {
		redirectErr(c, "/vendors", errorMessage(err, "Create failed"))
		return
	}

	redirect(c, "/vendors", "Vendor submitted for approval")
}

// UpdateVendor - POST /vendors/:id
func (h *Handlers) UpdateVendor(c *gin.Context) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/vendors", "")
		return
	}

	req, msg := vendorForm(c)
	if msg != "" {
		redirectErr(c, "/vendors", msg)
		return
	}

	if err := h.backend.UpdateVendor(c.Request.Context(), s.Token, id, req); err != nil {
		redirectErr(c, "/vendors", errorMessage(err, "Update failed"))
		return
	}

	redirect(c, "/vendors", "Vendor updated")
}

// ApproveVendor - POST /vendors/:id/approve (админ)
func (h *Handlers) ApproveVendor(c *gin.Context) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/vendors", "")
		return
	}

	if err := h.backend.ApproveVendor(c.Request.Context(), s.Token, id); err != nil {
		redirectErr(c, "/vendors", errorMessage(err, "Approve failed"))
		return
	}

	redirect(c, "/vendors", "Vendor approved")
}

// DeleteVendor - POST /vendors/:id/delete
func (h *Handlers) DeleteVendor(c *gin.Context) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/vendors", "")
		return
	}

	if err := h.backend.DeleteVendor(c.Request.Context(), s.Token, id); err != nil {
		redirectErr(c, "/vendors", errorMessage(err, "Delete failed"))
		return
	}

	redirect(c, "/vendors", "Vendor deleted")
}
