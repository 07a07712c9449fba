package models

import "time"

type TaskStatus string

const (
	StatusPending  TaskStatus = "PENDING"
	StatusApproved TaskStatus = "APPROVED"
)

type Task struct {
	ID          int64
	Title       string
	Description string
	Status      TaskStatus
	CreatorID   int64
	Creator     *User
	Approvers   []User
	Approvals   []Approval
	Comments    []Comment
}

type Approval struct {
	ID           int64
	TaskID       int64
	ApproverID   int64
	ApprovalDate time.Time
	Approved     bool
}

// Comment carries the author name alongside the author id so responses
// can be rendered without another user lookup.
type Comment struct {
	ID        int64
	TaskID    int64
	UserID    int64
	UserName  string
	Content   string
	CreatedAt time.Time
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ApproverIDs []int64 `json:"approverIds"`
}

// UpdateTaskRequest is a partial update: nil title/description are left
// untouched, approver ids are merged into the existing approver set.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ApproverIDs []int64 `json:"approverIds"`
}

type CommentRequest struct {
	Content string `json:"content"`
}
