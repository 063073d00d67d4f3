package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
)

func TestAuthService_Register(t *testing.T) {
	t.Run("creates the user and issues a token", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockTokenService)

		users.On("FindByUsername", mock.Anything, "angler").Return(nil, nil)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			if u.Username != "angler" || u.Email != "angler@example.com" || u.Role != domain.RoleUser {
				return false
			}

			// The stored hash must verify against the submitted password.
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1!")) == nil
		})).Return(&domain.User{ID: 5, Username: "angler", Email: "angler@example.com", Role: domain.RoleUser}, nil)
		tokens.On("Generate", "angler").Return("signed-token", nil)

		service := NewAuthService(users, tokens, zap.NewNop())

		result, err := service.Register(context.Background(), "angler", "secret1!", "angler@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, "angler", result.Username)
		assert.Equal(t, int64(5), result.UserID)
		users.AssertExpectations(t)
		tokens.AssertExpectations(t)
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockTokenService)

		users.On("FindByUsername", mock.Anything, "angler").
			Return(&domain.User{ID: 1, Username: "angler"}, nil)

		service := NewAuthService(users, tokens, zap.NewNop())

		result, err := service.Register(context.Background(), "angler", "secret1!", "angler@example.com")

		assert.Nil(t, result)

		var domainErr *domain.Error
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeConflict, domainErr.Code)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockTokenService)

		users.On("FindByUsername", mock.Anything, "angler").Return(nil, errors.New("db down"))

		service := NewAuthService(users, tokens, zap.NewNop())

		result, err := service.Register(context.Background(), "angler", "secret1!", "angler@example.com")

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1!"), bcrypt.MinCost)
	assert.NoError(t, err)

	stored := &domain.User{ID: 5, Username: "angler", PasswordHash: string(hash)}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockTokenService)

		users.On("FindByUsername", mock.Anything, "angler").Return(stored, nil)
		tokens.On("Generate", "angler").Return("signed-token", nil)

		service := NewAuthService(users, tokens, zap.NewNop())

		result, err := service.Authenticate(context.Background(), "angler", "secret1!")

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, int64(5), result.UserID)
	})

	t.Run("wrong password and unknown user fail identically", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockTokenService)

		users.On("FindByUsername", mock.Anything, "angler").Return(stored, nil)
		users.On("FindByUsername", mock.Anything, "nobody").Return(nil, nil)

		service := NewAuthService(users, tokens, zap.NewNop())

		_, wrongPassword := service.Authenticate(context.Background(), "angler", "not-it")
		_, unknownUser := service.Authenticate(context.Background(), "nobody", "secret1!")

		var wrongErr, unknownErr *domain.Error
		assert.ErrorAs(t, wrongPassword, &wrongErr)
		assert.ErrorAs(t, unknownUser, &unknownErr)
		assert.Equal(t, domain.CodeInvalidCredentials, wrongErr.Code)
		assert.Equal(t, domain.CodeInvalidCredentials, unknownErr.Code)
		assert.Equal(t, wrongErr.Message, unknownErr.Message)
		tokens.AssertNotCalled(t, "Generate", mock.Anything)
	})
}
