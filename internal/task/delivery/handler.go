package delivery

import (
	"net/http"

	"mtasks-backend/internal/apperror"
	authdelivery "mtasks-backend/internal/auth/delivery"
	"mtasks-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date"`
}

// CreateTask creates a task under a list
// POST /api/lists/:listId/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	ownerID := c.GetString(authdelivery.ContextUserID)
	listID := c.Param("listId")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(listID, ownerID, usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		apperror.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTasks returns all tasks for a list, newest first
// GET /api/lists/:listId/tasks
func (h *TaskHandler) GetTasks(c *gin.Context) {
	ownerID := c.GetString(authdelivery.ContextUserID)
	listID := c.Param("listId")

	tasks, err := h.taskUsecase.GetTasks(listID, ownerID)
	if err != nil {
		apperror.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID returns a single task
// GET /api/lists/:listId/tasks/:taskId
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	ownerID := c.GetString(authdelivery.ContextUserID)
	listID := c.Param("listId")
	taskID := c.Param("taskId")

	task, err := h.taskUsecase.GetTaskByID(taskID, listID, ownerID)
	if err != nil {
		apperror.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask applies a partial update to a task
// PUT /api/lists/:listId/tasks/:taskId
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	ownerID := c.GetString(authdelivery.ContextUserID)
	listID := c.Param("listId")
	taskID := c.Param("taskId")

	var patch usecase.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(taskID, listID, ownerID, patch)
	if err != nil {
		apperror.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task
// DELETE /api/lists/:listId/tasks/:taskId
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	ownerID := c.GetString(authdelivery.ContextUserID)
	listID := c.Param("listId")
	taskID := c.Param("taskId")

	if err := h.taskUsecase.DeleteTask(taskID, listID, ownerID); err != nil {
		apperror.Write(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
