package users

import (
	"context"
	"log/slog"

	"github.com/pinkman07/TaksApprovalSystem/internal/models"
	"github.com/pinkman07/TaksApprovalSystem/internal/utils"
)

type userRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetAll(ctx context.Context) ([]models.User, error)
}

type userService struct {
	repo userRepository
}

func NewService(r userRepository) *userService {
	return &userService{repo: r}
}

// Create hashes the password before persistence. A duplicate email fails
// at the database's unique constraint and propagates untranslated.
func (s *userService) Create(ctx context.Context, input models.SignupRequest) (*models.User, error) {
	slog.Info("creating user", "email", input.Email)

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		slog.Error("error while creating user", "email", input.Email, "error", err)
		return nil, err
	}
	slog.Info("user created", "user_id", user.ID)
	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.repo.GetAll(ctx)
}
