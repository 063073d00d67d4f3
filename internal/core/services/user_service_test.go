package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
)

func TestUserService_PartialUpdate(t *testing.T) {
	t.Run("hashes a replacement password before storing", func(t *testing.T) {
		users := new(MockUserRepository)

		existing := &domain.User{ID: 7, Username: "angler", PasswordHash: "old-hash", Email: "angler@example.com"}

		users.On("FindByID", mock.Anything, int64(7)).Return(existing, nil)
		users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			if u.PasswordHash == "old-hash" {
				return false
			}

			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("newpass1!")) == nil
		})).Return(existing, nil)

		service := NewUserService(users, zap.NewNop())

		password := "newpass1!"

		_, err := service.PartialUpdate(context.Background(), 7, domain.UserUpdate{Password: &password})

		assert.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("leaves nil fields untouched", func(t *testing.T) {
		users := new(MockUserRepository)

		existing := &domain.User{ID: 7, Username: "angler", PasswordHash: "old-hash", Email: "angler@example.com"}

		users.On("FindByID", mock.Anything, int64(7)).Return(existing, nil)
		users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "angler" && u.PasswordHash == "old-hash" && u.Email == "new@example.com"
		})).Return(existing, nil)

		service := NewUserService(users, zap.NewNop())

		email := "new@example.com"

		_, err := service.PartialUpdate(context.Background(), 7, domain.UserUpdate{Email: &email})

		assert.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("missing user yields not found", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

		service := NewUserService(users, zap.NewNop())

		email := "new@example.com"

		result, err := service.PartialUpdate(context.Background(), 99, domain.UserUpdate{Email: &email})

		assert.Nil(t, result)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestUserService_Delete(t *testing.T) {
	users := new(MockUserRepository)
	users.On("DeleteCascade", mock.Anything, int64(7)).Return(nil)

	service := NewUserService(users, zap.NewNop())

	assert.NoError(t, service.Delete(context.Background(), 7))
	users.AssertExpectations(t)
}
