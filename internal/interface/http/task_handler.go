package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/taskhive/taskhive/internal/application"
	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/internal/interface/middleware"
	"github.com/taskhive/taskhive/pkg/response"
	"github.com/taskhive/taskhive/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type taskRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	DueDate     time.Time `json:"due_date" binding:"required"`
}

func taskJSON(t *entity.Task) gin.H {
	return gin.H{
		"task_id":     t.ID,
		"user_id":     t.UserID,
		"title":       t.Title,
		"description": t.Description,
		"completed":   t.Completed,
		"due_date":    t.DueDate,
		"created_at":  t.CreatedAt,
		"updated_at":  t.UpdatedAt,
	}
}

// List GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	tasks, err := h.Svc.ListTasks(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("list tasks failed")
		response.Error(c, http.StatusInternalServerError, "Error fetching tasks")
		return
	}
	out := make([]gin.H, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskJSON(&tasks[i]))
	}
	response.JSON(c, http.StatusOK, out)
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Svc.CreateTask(c.Request.Context(), uid, application.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create task failed")
		response.Error(c, http.StatusInternalServerError, "Error creating task")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"id":      t.ID,
		"message": "Task created successfully",
	})
}

// Get GET /api/tasks/:task_id
func (h *TaskHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Svc.GetTask(c.Request.Context(), uid, c.Param("task_id"))
	if errors.Is(err, application.ErrTaskNotFound) {
		response.Error(c, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("get task failed")
		response.Error(c, http.StatusInternalServerError, "Error fetching task")
		return
	}
	response.JSON(c, http.StatusOK, taskJSON(t))
}

// Update PUT /api/tasks/:task_id
func (h *TaskHandler) Update(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	_, err := h.Svc.UpdateTask(c.Request.Context(), uid, c.Param("task_id"), application.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		DueDate:     req.DueDate,
	})
	if errors.Is(err, application.ErrTaskNotFound) {
		response.Error(c, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("update task failed")
		response.Error(c, http.StatusInternalServerError, "Error updating task")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Task updated successfully"})
}

// Delete DELETE /api/tasks/:task_id
func (h *TaskHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	err := h.Svc.DeleteTask(c.Request.Context(), uid, c.Param("task_id"))
	if errors.Is(err, application.ErrTaskNotFound) {
		response.Error(c, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("delete task failed")
		response.Error(c, http.StatusInternalServerError, "Error deleting task")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
