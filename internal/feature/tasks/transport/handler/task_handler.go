// Package handler はtasksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskflow_backend/internal/feature/tasks/domain/entity"
	"taskflow_backend/internal/feature/tasks/transport/http/dto"
	"taskflow_backend/internal/feature/tasks/usecase"
	jwtmw "taskflow_backend/internal/platform/jwt"
)

// TaskUsecase はタスク操作のユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TaskUsecase interface {
	List(ctx context.Context, ownerID uint) ([]entity.Task, error)
	Create(ctx context.Context, ownerID uint, in usecase.CreateTaskInput) (*entity.Task, error)
	Update(ctx context.Context, id, ownerID uint, in usecase.UpdateTaskInput) (*entity.Task, error)
	Delete(ctx context.Context, id, ownerID uint) error
}

// TaskHandler はタスク操作のHTTPリクエストを処理します。
// 全エンドポイントはAuth Gate配下にあり、オーナーIDは認証済みユーザーから
// のみ取得します。リクエストボディのオーナー指定は存在しません。
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler は新しいTaskHandlerを作成します。
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// ownerID resolves the authenticated caller's user ID from the gin context.
// The boolean is false when the Auth Gate did not run, in which case a 401
// has already been written.
func ownerID(c *gin.Context) (uint, bool) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return 0, false
	}
	return user.ID, true
}

// taskID parses the :id path parameter.
func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return 0, false
	}
	return uint(id), true
}

// List は呼び出し元が所有するタスク一覧を返すAPIです。
func (h *TaskHandler) List(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), owner)
	if err != nil {
		slog.Error("task list failed", "error", err, "user_id", owner)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskListResponse(tasks))
}

// Create はタスク作成APIです。
// - リクエストJSONをCreateTaskReqにバインド
// - バリデーションエラー時は400を返却
// - 成功時は作成されたタスク付きで201を返却
func (h *TaskHandler) Create(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task create validation failed", "error", err, "user_id", owner)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), owner, usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidTask) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("task create failed", "error", err, "user_id", owner)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("task created", "task_id", task.ID, "user_id", owner)
	c.JSON(http.StatusCreated, dto.NewTaskResponse(task))
}

// Update はタスクの部分更新APIです。
// 指定されたフィールドのみをマージし、他ユーザーのタスクは404になります。
func (h *TaskHandler) Update(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task update validation failed", "error", err, "user_id", owner)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), id, owner, usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		case errors.Is(err, usecase.ErrInvalidTask):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("task update failed", "error", err, "task_id", id, "user_id", owner)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

// Delete はタスク削除APIです。
// 存在しないタスク、または他ユーザーのタスクは404になります。
func (h *TaskHandler) Delete(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id, owner); err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		slog.Error("task delete failed", "error", err, "task_id", id, "user_id", owner)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("task deleted", "task_id", id, "user_id", owner)
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
