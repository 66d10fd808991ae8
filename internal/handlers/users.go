package handlers

import (
	"net/http"
	"strconv"

	"eventease/internal/views"

	"github.com/gin-gonic/gin"
)

// UsersPage - GET /users
// Админская страница управления пользователями. Список загружается целиком,
// фильтры (роль + поиск) применяются локально как чистые предикаты.
func (h *Handlers) UsersPage(c *gin.Context) {
	s := h.sess(c)

	roleFilter := c.DefaultQuery("role", "ALL")
	query := c.Query("q")

	page, err := h.backend.ListUsers(c.Request.Context(), s.Token)
	if err != nil {
		h.render(c, http.StatusOK, "users.html", gin.H{
			"Title": "User Management",
			"Err":   errorMessage(err, "Failed to load users"),
		})
		return
	}

	h.render(c, http.StatusOK, "users.html", gin.H{
		"Title":      "User Management",
		"Users":      views.FilterUsers(page.Content, roleFilter, query),
		"Total":      len(page.Content),
		"RoleCounts": views.RoleCounts(page.Content),
		"RoleFilter": roleFilter,
		"Query":      query,
		"Err":        c.Query("err"),
	})
}

// UpdateUserRole - POST /users/:id/role
func (h *Handlers) UpdateUserRole(c *gin.Context) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/users", "")
		return
	}
	role := roleLabel(c.PostForm("role"))

	if err := h.backend.UpdateUserRole(c.Request.Context(), s.Token, id, role); err != nil {
		redirectErr(c, "/users", errorMessage(err, "Update failed"))
		return
	}

	redirect(c, "/users", "Role updated")
}

// DeleteUser - POST /users/:id/delete
// Ошибки удаления (внешние ключи и т.п.) бэкенд возвращает текстом; клиент
// переводит их в понятные сообщения.
func (h *Handlers) DeleteUser(c *gin.Context) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/users", "")
		return
	}

	if err := h.backend.DeleteUser(c.Request.Context(), s.Token, id); err != nil {
		redirectErr(c, "/users", errorMessage(err, "Failed to delete user"))
		return
	}

	redirect(c, "/users", "User deleted")
}
