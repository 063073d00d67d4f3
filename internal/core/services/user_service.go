package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

type userService struct {
	users  ports.UserRepository
	logger *zap.Logger
}

// NewUserService creates the service handling user business operations,
// including the cascade delete of a user's trips and catches.
func NewUserService(users ports.UserRepository, logger *zap.Logger) ports.UserService {
	return &userService{
		users:  users,
		logger: logger,
	}
}

func (s *userService) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *userService) FindOne(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *userService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.users.Exists(ctx, id)
}

func (s *userService) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.users.Update(ctx, user)
}

func (s *userService) PartialUpdate(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return nil, domain.NewNotFound("user", id)
	}

	if update.Username != nil {
		existing.Username = *update.Username
	}

	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, &domain.Error{
				Code:    domain.CodeInternal,
				Message: "failed to hash password",
				Cause:   err,
			}
		}

		existing.PasswordHash = string(hash)
	}

	if update.Email != nil {
		existing.Email = *update.Email
	}

	return s.users.Update(ctx, existing)
}

// Delete removes the user, every trip the user owns and all catches of those
// trips in one transaction. Missing ids are a no-op.
func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.users.DeleteCascade(ctx, id); err != nil {
		s.logger.Error("failed to delete user", zap.Int64("user_id", id), zap.Error(err))
		return err
	}

	return nil
}
