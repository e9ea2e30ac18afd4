package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jestatech/jts-site/internal/dto"
	apierrors "github.com/jestatech/jts-site/internal/errors"
	"github.com/jestatech/jts-site/internal/services"
)

// TaskHandler serves the admin task API.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks returns every task, newest first.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.GetAllTasks()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTask returns one task by ID.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	task, err := h.taskService.GetTaskByID(id)
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// ListTasksByStatus returns tasks with one status.
func (h *TaskHandler) ListTasksByStatus(c *gin.Context) {
	tasks, err := h.taskService.GetTasksByStatus(c.Param("status"))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// ListTasksByPriority returns tasks with one priority.
func (h *TaskHandler) ListTasksByPriority(c *gin.Context) {
	tasks, err := h.taskService.GetTasksByPriority(c.Param("priority"))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTaskStats returns per-status counts plus a total.
func (h *TaskHandler) GetTaskStats(c *gin.Context) {
	stats, err := h.taskService.GetTaskStats()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute task stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CreateTask creates a task, filling status/priority defaults.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(req.ToModel())
	if err != nil {
		apierrors.InternalError(c, "Failed to create task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTask merges the non-null body fields onto a stored task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var patch dto.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(id, patch)
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTaskStatus changes only a task's status.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
		apierrors.BadRequest(c, "status is required")
		return
	}

	task, err := h.taskService.UpdateTaskStatus(id, body.Status)
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task by ID.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func respondTaskError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrTaskNotFound) {
		apierrors.NotFound(c, err.Error())
		return
	}
	apierrors.InternalError(c, "")
}
