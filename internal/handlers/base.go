package handlers

import (
	"context"

	"github.com/pinkman07/TaksApprovalSystem/internal/models"
)

type taskService interface {
	Create(ctx context.Context, input models.CreateTaskRequest, creatorID int64) (*models.Task, error)
	Approve(ctx context.Context, taskID, approverID int64) (*models.Task, error)
	AddComment(ctx context.Context, taskID, userID int64, content string) (*models.Comment, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	GetAll(ctx context.Context) ([]models.Task, error)
	GetByCreator(ctx context.Context, userID int64) ([]models.Task, error)
	GetByApprover(ctx context.Context, userID int64) ([]models.Task, error)
	Update(ctx context.Context, taskID int64, input models.UpdateTaskRequest) (*models.Task, error)
}

type userService interface {
	Create(ctx context.Context, input models.SignupRequest) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
}

type Handler struct {
	TaskService taskService
	UserService userService
}

func NewHandler(ts taskService, us userService) *Handler {
	return &Handler{
		TaskService: ts,
		UserService: us,
	}
}
