package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", h.CreateTask)
			r.Get("/", h.ListTasks)
			r.Get("/{taskID}", h.GetTask)
			r.Patch("/{taskID}", h.UpdateTask)
			r.Post("/{taskID}/approve", h.ApproveTask)
			r.Post("/{taskID}/comments", h.AddComment)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/signup", h.Signup)
			r.Get("/", h.ListUsers)
			r.Get("/{userID}/tasks", h.ListUserTasks)
			r.Get("/{userID}/approvals", h.ListUserApprovals)
		})
	})

	return router
}
