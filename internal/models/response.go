package models

import "time"

type TaskResponse struct {
	ID               int64             `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Status           TaskStatus        `json:"status"`
	Creator          UserResponse      `json:"creator"`
	ApproverStatuses []ApproverStatus  `json:"approverStatuses"`
	Comments         []CommentResponse `json:"comments"`
}

type ApproverStatus struct {
	ApproverID   int64      `json:"approverId"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	HasApproved  bool       `json:"hasApproved"`
	ApprovalDate *time.Time `json:"approvalDate"`
}

type CommentResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName"`
	TaskID    int64     `json:"taskId"`
}

// NewTaskResponse flattens a task and its collections into the response
// shape: one status entry per approver, joined against the approval log.
func NewTaskResponse(t *Task) TaskResponse {
	approvalsByUser := make(map[int64]Approval, len(t.Approvals))
	for _, a := range t.Approvals {
		approvalsByUser[a.ApproverID] = a
	}

	statuses := make([]ApproverStatus, 0, len(t.Approvers))
	for _, approver := range t.Approvers {
		status := ApproverStatus{
			ApproverID: approver.ID,
			Name:       approver.Name,
			Email:      approver.Email,
		}
		if approval, ok := approvalsByUser[approver.ID]; ok {
			date := approval.ApprovalDate
			status.HasApproved = true
			status.ApprovalDate = &date
		}
		statuses = append(statuses, status)
	}

	comments := make([]CommentResponse, 0, len(t.Comments))
	for _, c := range t.Comments {
		comments = append(comments, NewCommentResponse(&c))
	}

	var creator UserResponse
	if t.Creator != nil {
		creator = NewUserResponse(t.Creator)
	}

	return TaskResponse{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Status:           t.Status,
		Creator:          creator,
		ApproverStatuses: statuses,
		Comments:         comments,
	}
}

func NewCommentResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UserID:    c.UserID,
		UserName:  c.UserName,
		TaskID:    c.TaskID,
	}
}

func NewTaskResponses(tasks []Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, NewTaskResponse(&tasks[i]))
	}
	return responses
}
