package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pinkman07/TaksApprovalSystem/internal/models"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var input models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	user, err := h.UserService.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewUserResponse(user))
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, models.NewUserResponse(&users[i]))
	}
	writeJSON(w, http.StatusOK, responses)
}

// ListUserTasks returns the tasks created by a user.
func (h *Handler) ListUserTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		badRequest(w, "invalid user ID")
		return
	}

	tasks, err := h.TaskService.GetByCreator(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewTaskResponses(tasks))
}

// ListUserApprovals returns the tasks whose approver set contains a user.
func (h *Handler) ListUserApprovals(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		badRequest(w, "invalid user ID")
		return
	}

	tasks, err := h.TaskService.GetByApprover(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewTaskResponses(tasks))
}
