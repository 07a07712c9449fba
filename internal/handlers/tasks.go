package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pinkman07/TaksApprovalSystem/internal/models"
)

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	creatorID, err := queryID(r, "creatorId")
	if err != nil {
		badRequest(w, "invalid creatorId")
		return
	}
	var input models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	task, err := h.TaskService.Create(r.Context(), input, creatorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewTaskResponse(task))
}

func (h *Handler) ApproveTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "taskID")
	if err != nil {
		badRequest(w, "invalid task ID")
		return
	}
	approverID, err := queryID(r, "approverId")
	if err != nil {
		badRequest(w, "invalid approverId")
		return
	}

	task, err := h.TaskService.Approve(r.Context(), taskID, approverID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewTaskResponse(task))
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "taskID")
	if err != nil {
		badRequest(w, "invalid task ID")
		return
	}
	userID, err := queryID(r, "userId")
	if err != nil {
		badRequest(w, "invalid userId")
		return
	}
	var input models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	comment, err := h.TaskService.AddComment(r.Context(), taskID, userID, input.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewCommentResponse(comment))
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "taskID")
	if err != nil {
		badRequest(w, "invalid task ID")
		return
	}

	task, err := h.TaskService.GetByID(r.Context(), taskID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewTaskResponse(task))
}

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.TaskService.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewTaskResponses(tasks))
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "taskID")
	if err != nil {
		badRequest(w, "invalid task ID")
		return
	}
	var input models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	task, err := h.TaskService.Update(r.Context(), taskID, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewTaskResponse(task))
}
