package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

type authService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	logger *zap.Logger
}

// NewAuthService creates the service that registers users and issues signed
// tokens on login. Passwords are stored as bcrypt hashes only.
func NewAuthService(users ports.UserRepository, tokens ports.TokenService, logger *zap.Logger) ports.AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (s *authService) Register(ctx context.Context, username, password, email string) (*ports.AuthResult, error) {
	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, &domain.Error{
			Code:    domain.CodeConflict,
			Message: "username is already taken",
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &domain.Error{
			Code:    domain.CodeInternal,
			Message: "failed to hash password",
			Cause:   err,
		}
	}

	user, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Role:         domain.RoleUser,
	})
	if err != nil {
		s.logger.Error("failed to create user", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	token, err := s.tokens.Generate(user.Username)
	if err != nil {
		return nil, &domain.Error{
			Code:    domain.CodeInternal,
			Message: "failed to issue token",
			Cause:   err,
		}
	}

	s.logger.Info("user registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))

	return &ports.AuthResult{
		Token:    token,
		Username: user.Username,
		UserID:   user.ID,
	}, nil
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	// Identical failure for unknown user and wrong password so the response
	// does not reveal which one it was.
	if user == nil {
		return nil, invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, invalidCredentials()
	}

	token, err := s.tokens.Generate(user.Username)
	if err != nil {
		return nil, &domain.Error{
			Code:    domain.CodeInternal,
			Message: "failed to issue token",
			Cause:   err,
		}
	}

	return &ports.AuthResult{
		Token:    token,
		Username: user.Username,
		UserID:   user.ID,
	}, nil
}

func invalidCredentials() *domain.Error {
	return &domain.Error{
		Code:    domain.CodeInvalidCredentials,
		Message: "invalid username or password",
	}
}
