package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pinkman07/TaksApprovalSystem/internal/models"
	"github.com/pinkman07/TaksApprovalSystem/internal/repository"
)

// approvalThreshold is the number of recorded approvals that flips a task
// to APPROVED.
const approvalThreshold = 3

var (
	ErrNotAnApprover = errors.New("user is not an approver for this task")
)

type taskRepository interface {
	Create(ctx context.Context, t *models.Task, approverIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	GetAll(ctx context.Context) ([]models.Task, error)
	GetByCreator(ctx context.Context, userID int64) ([]models.Task, error)
	GetByApprover(ctx context.Context, userID int64) ([]models.Task, error)
	AddApproval(ctx context.Context, a *models.Approval, threshold int) (int, error)
	Update(ctx context.Context, t *models.Task, addApproverIDs []int64) error
}

type userRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type commentRepository interface {
	Create(ctx context.Context, c *models.Comment) error
}

type notifier interface {
	Notify(to, subject, body string)
}

type taskService struct {
	tasks    taskRepository
	users    userRepository
	comments commentRepository
	notifier notifier

	adminEmail   string
	managerEmail string
}

func NewService(tasks taskRepository, users userRepository, comments commentRepository,
	n notifier, adminEmail, managerEmail string) *taskService {
	return &taskService{
		tasks:        tasks,
		users:        users,
		comments:     comments,
		notifier:     n,
		adminEmail:   adminEmail,
		managerEmail: managerEmail,
	}
}

// Create resolves the creator and every approver before persisting
// anything, so an unknown id aborts the whole operation. Duplicate
// approver ids collapse into the set.
func (s *taskService) Create(ctx context.Context, input models.CreateTaskRequest, creatorID int64) (*models.Task, error) {
	slog.Info("creating task", "title", input.Title, "creator_id", creatorID)

	creator, err := s.resolveUser(ctx, creatorID, "creator")
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(input.ApproverIDs))
	var approvers []models.User
	for _, approverID := range input.ApproverIDs {
		if seen[approverID] {
			continue
		}
		seen[approverID] = true
		approver, err := s.resolveUser(ctx, approverID, "approver")
		if err != nil {
			return nil, err
		}
		approvers = append(approvers, *approver)
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      models.StatusPending,
		CreatorID:   creator.ID,
		Creator:     creator,
		Approvers:   approvers,
	}
	approverIDs := make([]int64, 0, len(approvers))
	for _, a := range approvers {
		approverIDs = append(approverIDs, a.ID)
	}
	if err := s.tasks.Create(ctx, task, approverIDs); err != nil {
		return nil, err
	}
	slog.Info("task created", "task_id", task.ID)

	s.notifier.Notify(s.adminEmail, "New Task Created",
		fmt.Sprintf("Task '%s' created by %s", task.Title, creator.Name))
	for _, approver := range approvers {
		s.notifier.Notify(approver.Email, "New Task Requires Your Approval",
			fmt.Sprintf("Task '%s' requires your approval", task.Title))
	}

	return task, nil
}

// Approve records an approval for a member of the task's approver set and
// flips the task to APPROVED once the approval count reaches the
// threshold. Repeat approvals by the same user are not rejected.
func (s *taskService) Approve(ctx context.Context, taskID, approverID int64) (*models.Task, error) {
	slog.Info("processing approval", "task_id", taskID, "approver_id", approverID)

	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	approver, err := s.resolveUser(ctx, approverID, "approver")
	if err != nil {
		return nil, err
	}

	isApprover := false
	for _, a := range task.Approvers {
		if a.ID == approver.ID {
			isApprover = true
			break
		}
	}
	if !isApprover {
		slog.Error("approval rejected", "task_id", taskID, "approver_id", approverID)
		return nil, ErrNotAnApprover
	}

	approval := &models.Approval{
		TaskID:       task.ID,
		ApproverID:   approver.ID,
		ApprovalDate: time.Now(),
		Approved:     true,
	}
	count, err := s.tasks.AddApproval(ctx, approval, approvalThreshold)
	if err != nil {
		return nil, err
	}
	task.Approvals = append(task.Approvals, *approval)

	if count >= approvalThreshold {
		slog.Info("task has received all required approvals", "task_id", task.ID)
		task.Status = models.StatusApproved

		s.notifier.Notify(s.managerEmail, "Task Fully Approved",
			fmt.Sprintf("Task '%s' has received all approvals", task.Title))

		recipients := map[string]bool{task.Creator.Email: true}
		for _, a := range task.Approvers {
			recipients[a.Email] = true
		}
		for email := range recipients {
			s.notifier.Notify(email, "Task Approved",
				fmt.Sprintf("Task '%s' has been approved by all approvers", task.Title))
		}
	}

	return task, nil
}

func (s *taskService) AddComment(ctx context.Context, taskID, userID int64, content string) (*models.Comment, error) {
	slog.Info("adding comment", "task_id", taskID, "user_id", userID)

	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	user, err := s.resolveUser(ctx, userID, "user")
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		TaskID:    task.ID,
		UserID:    user.ID,
		UserName:  user.Name,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	return s.getTask(ctx, id)
}

func (s *taskService) GetAll(ctx context.Context) ([]models.Task, error) {
	return s.tasks.GetAll(ctx)
}

func (s *taskService) GetByCreator(ctx context.Context, userID int64) ([]models.Task, error) {
	if _, err := s.resolveUser(ctx, userID, "user"); err != nil {
		return nil, err
	}
	return s.tasks.GetByCreator(ctx, userID)
}

func (s *taskService) GetByApprover(ctx context.Context, userID int64) ([]models.Task, error) {
	if _, err := s.resolveUser(ctx, userID, "user"); err != nil {
		return nil, err
	}
	return s.tasks.GetByApprover(ctx, userID)
}

// Update applies a partial update. Approver ids merge additively into the
// existing set; each newly introduced approver is resolved before any
// persistence and notified afterwards.
func (s *taskService) Update(ctx context.Context, taskID int64, input models.UpdateTaskRequest) (*models.Task, error) {
	slog.Info("updating task", "task_id", taskID)

	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}

	existing := make(map[int64]bool, len(task.Approvers))
	for _, a := range task.Approvers {
		existing[a.ID] = true
	}

	var added []models.User
	addedIDs := make([]int64, 0, len(input.ApproverIDs))
	for _, approverID := range input.ApproverIDs {
		if existing[approverID] {
			continue
		}
		existing[approverID] = true
		approver, err := s.resolveUser(ctx, approverID, "approver")
		if err != nil {
			return nil, err
		}
		added = append(added, *approver)
		addedIDs = append(addedIDs, approver.ID)
	}

	if err := s.tasks.Update(ctx, task, addedIDs); err != nil {
		return nil, err
	}
	task.Approvers = append(task.Approvers, added...)

	for _, approver := range added {
		s.notifier.Notify(approver.Email, "New Task Requires Your Approval",
			fmt.Sprintf("Task '%s' requires your approval", task.Title))
	}

	return task, nil
}

func (s *taskService) getTask(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			slog.Error("task not found", "task_id", id)
			return nil, fmt.Errorf("task %w", repository.ErrNotFound)
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) resolveUser(ctx context.Context, id int64, role string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			slog.Error("user not found", "role", role, "user_id", id)
			return nil, fmt.Errorf("%s %w", role, repository.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}
