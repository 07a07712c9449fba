package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewTaskResponse_JoinsApproversAndApprovals(t *testing.T) {
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	task := &Task{
		ID:     10,
		Title:  "T",
		Status: StatusPending,
		Creator: &User{ID: 1, Name: "Alice", Email: "alice@x.com"},
		Approvers: []User{
			{ID: 2, Name: "Bob", Email: "bob@x.com"},
			{ID: 3, Name: "Carol", Email: "carol@x.com"},
		},
		Approvals: []Approval{
			{ID: 1, TaskID: 10, ApproverID: 2, ApprovalDate: when, Approved: true},
		},
	}

	resp := NewTaskResponse(task)
	if len(resp.ApproverStatuses) != 2 {
		t.Fatalf("approverStatuses size=%d, want 2", len(resp.ApproverStatuses))
	}

	bob, carol := resp.ApproverStatuses[0], resp.ApproverStatuses[1]
	if !bob.HasApproved || bob.ApprovalDate == nil || !bob.ApprovalDate.Equal(when) {
		t.Errorf("bob status=%+v, want approved at %v", bob, when)
	}
	if carol.HasApproved || carol.ApprovalDate != nil {
		t.Errorf("carol status=%+v, want not approved with nil date", carol)
	}
	if resp.Creator.Email != "alice@x.com" {
		t.Errorf("creator=%+v", resp.Creator)
	}
}

func TestNewTaskResponse_NullApprovalDateInJSON(t *testing.T) {
	task := &Task{
		ID:        10,
		Status:    StatusPending,
		Creator:   &User{ID: 1},
		Approvers: []User{{ID: 2, Name: "Bob", Email: "bob@x.com"}},
	}

	data, err := json.Marshal(NewTaskResponse(task))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"approvalDate":null`) {
		t.Errorf("json=%s, want explicit null approvalDate", data)
	}
	if !strings.Contains(string(data), `"hasApproved":false`) {
		t.Errorf("json=%s, want hasApproved false", data)
	}
}

func TestUserJSON_OmitsPasswordHash(t *testing.T) {
	data, err := json.Marshal(User{ID: 1, Name: "A", Email: "a@x.com", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "hash") || strings.Contains(strings.ToLower(string(data)), "password") {
		t.Errorf("json=%s, credential leaked", data)
	}
}

func TestNewTaskResponses_EmptySliceNotNull(t *testing.T) {
	data, err := json.Marshal(NewTaskResponses(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("json=%s, want []", data)
	}
}
