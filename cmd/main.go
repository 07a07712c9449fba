package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pinkman07/TaksApprovalSystem/internal/config"
	"github.com/pinkman07/TaksApprovalSystem/internal/handlers"
	"github.com/pinkman07/TaksApprovalSystem/internal/notifier"
	"github.com/pinkman07/TaksApprovalSystem/internal/repository"
	"github.com/pinkman07/TaksApprovalSystem/internal/service/tasks"
	"github.com/pinkman07/TaksApprovalSystem/internal/service/users"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.MustLoad()

	conn, err := repository.NewConnection(ctx, cfg.PostgresConfig)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer conn.Close()

	userRepo := repository.NewUserRepository(conn)
	taskRepo := repository.NewTaskRepository(conn)
	commentRepo := repository.NewCommentRepository(conn)

	mailer := notifier.NewMailer(cfg.SMTPConfig)
	dispatcher := notifier.NewDispatcher(mailer, cfg.Notifications.QueueSize, cfg.Notifications.Workers)

	userService := users.NewService(userRepo)
	taskService := tasks.NewService(taskRepo, userRepo, commentRepo, dispatcher,
		cfg.Notifications.AdminEmail, cfg.Notifications.ManagerEmail)

	h := handlers.NewHandler(taskService, userService)

	server := &http.Server{
		Addr:    "[::]:" + cfg.ServerConfig.Port,
		Handler: h.Routes(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}()

	log.Print("start listening on port " + cfg.ServerConfig.Port)
	err = server.ListenAndServe()
	dispatcher.Stop()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
