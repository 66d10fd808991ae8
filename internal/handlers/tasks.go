package handlers

import (
	"net/http"
	"strconv"

	"eventease/internal/models"
	"eventease/internal/views"

	"github.com/gin-gonic/gin"
)

var taskStatuses = map[string]bool{
	models.TaskTodo:       true,
	models.TaskInProgress: true,
	models.TaskDone:       true,
	models.TaskCancelled:  true,
}

// TasksPage - GET /tasks, доска задач организатора/админа. Админ видит все
// задачи, организатор только задачи своих событий.
func (h *Handlers) TasksPage(c *gin.Context) {
	s := h.sess(c)
	ctx := c.Request.Context()

	data := gin.H{
		"Title": "Tasks",
		"Err":   c.Query("err"),
	}

	var (
		tasks []models.Task
		err   error
	)
	if raw := c.Query("event"); raw != "" {
		eventID, perr := strconv.ParseInt(raw, 10, 64)
		if perr == nil {
			tasks, err = h.backend.EventTasks(ctx, s.Token, eventID)
			data["SelectedEvent"] = eventID
		}
	} else if s.Role == models.RoleAdmin {
		tasks, err = h.backend.AllTasks(ctx, s.Token)
	} else {
		tasks, err = h.backend.MyTasks(ctx, s.Token)
	}
	if err != nil {
		data["Err"] = errorMessage(err, "Failed to load tasks")
	} else {
		status := c.Query("status")
		if !taskStatuses[status] {
			status = ""
		}
		data["Tasks"] = views.FilterTasksByStatus(tasks, status)
		data["Status"] = status
	}

	// Списки для формы создания: события и исполнители
	if events, err := h.backend.MyEvents(ctx, s.Token); err == nil {
		data["Events"] = events
	}
	if users, err := h.backend.SimpleUsers(ctx, s.Token); err == nil {
		data["Users"] = users
	}

	h.render(c, http.StatusOK, "tasks.html", data)
}

func taskForm(c *gin.Context) (*models.TaskRequest, string) {
	eventID, err := strconv.ParseInt(c.PostForm("eventId"), 10, 64)
	if err != nil {
		return nil, "Please select an event"
	}
	title := c.PostForm("title")
	if title == "" {
		return nil, "Title is required"
	}

	req := &models.TaskRequest{
		EventID:     eventID,
		Title:       title,
		Description: c.PostForm("description"),
		DueDate:     c.PostForm("dueDate"),
	}
	if raw := c.PostForm("assignedToUserId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, "Invalid assignee"
		}
		req.AssignedToUserID = userID
	}
	return req, ""
}

// CreateTask - POST /tasks
func (h *Handlers) CreateTask(c *gin.Context) {
	s := h.sess(c)

	req, msg := taskForm(c)
	if msg != "" {
		redirectErr(c, "/tasks", msg)
		return
	}

	if err := h.backend.CreateTask(c.Request.Context(), s.Token, req); err != nil {
		redirectErr(c, "/tasks", errorMessage(err, "Create failed"))
		return
	}

	redirect(c, "/tasks", "Task created")
}

// UpdateTask - POST /tasks/:id
func (h *Handlers) UpdateTask(c *gin.Context) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/tasks", "")
		return
	}

	req, msg := taskForm(c)
	if msg != "" {
		redirectErr(c, "/tasks", msg)
		return
	}

	if err := h.backend.UpdateTask(c.Request.Context(), s.Token, id, req); err != nil {
		redirectErr(c, "/tasks", errorMessage(err, "Update failed"))
		return
	}

	redirect(c, "/tasks", "Task updated")
}

// DeleteTask - POST /tasks/:id/delete
func (h *Handlers) DeleteTask(c *gin.Context) {
	s := h.sess(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/tasks", "")
		return
	}

	if err := h.backend.DeleteTask(c.Request.Context(), s.Token, id); err != nil {
		redirectErr(c, "/tasks", errorMessage(err, "Delete failed"))
		return
	}

	redirect(c, "/tasks", "Task deleted")
}

// MyTasksPage - GET /my-tasks, задачи назначенные текущему пользователю
func (h *Handlers) MyTasksPage(c *gin.Context) {
	s := h.sess(c)

	tasks, err := h.backend.MyTasks(c.Request.Context(), s.Token)
	if err != nil {
		h.render(c, http.StatusOK, "my_tasks.html", gin.H{
			"Title": "My Tasks",
			"Err":   errorMessage(err, "Failed to load tasks"),
		})
		return
	}

	h.render(c, http.StatusOK, "my_tasks.html", gin.H{
		"Title": "My Tasks",
		"Tasks": tasks,
		"Err":   c.Query("err"),
	})
}

// UpdateTaskStatus - POST /my-tasks/:id/status, перевод задачи по статусам
func (h *Handlers) UpdateTaskStatus(c *gin.Context) {
	s := h.sess(c)

	back := c.DefaultPostForm("back", "/my-tasks")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, back, "")
		return
	}
	status := c.PostForm("status")
	if !taskStatuses[status] {
		redirectErr(c, back, "Unknown task status")
		return
	}

	if err := h.backend.UpdateTaskStatus(c.Request.Context(), s.Token, id, status); err != nil {
		redirectErr(c, back, errorMessage(err, "Status update failed"))
		return
	}

	redirect(c, back, "Task status updated")
}
