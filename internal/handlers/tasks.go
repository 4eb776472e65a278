package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"forcefocus/api/internal/models"
	"forcefocus/api/internal/repository"
)

type createTaskRequest struct {
	Name             string     `json:"name" binding:"required"`
	Description      *string    `json:"description"`
	DueDate          *time.Time `json:"due_date"`
	LinkedSessionID  *string    `json:"linked_session_id"`
	TargetExecutable *string    `json:"target_executable"`
	TargetArguments  []string   `json:"target_arguments"`
}

type updateTaskRequest struct {
	Name             *string    `json:"name"`
	Description      *string    `json:"description"`
	DueDate          *time.Time `json:"due_date"`
	Status           *string    `json:"status"`
	LinkedSessionID  *string    `json:"linked_session_id"`
	TargetExecutable *string    `json:"target_executable"`
	TargetArguments  []string   `json:"target_arguments"`
}

type taskResponse struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	Name             string     `json:"name"`
	Description      *string    `json:"description"`
	CreatedAt        time.Time  `json:"created_at"`
	DueDate          *time.Time `json:"due_date"`
	Status           string     `json:"status"`
	LinkedSessionID  *string    `json:"linked_session_id"`
	TargetExecutable *string    `json:"target_executable"`
	TargetArguments  []string   `json:"target_arguments"`
}

func toTaskResponse(t models.Task) taskResponse {
	return taskResponse{
		ID:               t.ID.Hex(),
		UserID:           t.UserID,
		Name:             t.Name,
		Description:      t.Description,
		CreatedAt:        t.CreatedAt,
		DueDate:          t.DueDate,
		Status:           t.Status,
		LinkedSessionID:  t.LinkedSessionID,
		TargetExecutable: t.TargetExecutable,
		TargetArguments:  t.TargetArguments,
	}
}

func (h HandlerSet) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), currentUserID(c), repository.TaskInput{
		Name:             req.Name,
		Description:      req.Description,
		DueDate:          req.DueDate,
		LinkedSessionID:  req.LinkedSessionID,
		TargetExecutable: req.TargetExecutable,
		TargetArguments:  req.TargetArguments,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(task))
}

func (h HandlerSet) ListTasks(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, toTaskResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

func (h HandlerSet) GetTask(c *gin.Context) {
	task, err := h.tasks.Get(c.Request.Context(), currentUserID(c), c.Param("taskId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

func (h HandlerSet) UpdateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), currentUserID(c), c.Param("taskId"), repository.TaskPatch{
		Name:             req.Name,
		Description:      req.Description,
		DueDate:          req.DueDate,
		Status:           req.Status,
		LinkedSessionID:  req.LinkedSessionID,
		TargetExecutable: req.TargetExecutable,
		TargetArguments:  req.TargetArguments,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

func (h HandlerSet) DeleteTask(c *gin.Context) {
	if err := h.tasks.Delete(c.Request.Context(), currentUserID(c), c.Param("taskId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
