package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
)

func TestOwnershipService_Verify(t *testing.T) {
	owner := &domain.User{ID: 7, Username: "angler", Role: domain.RoleUser}

	tests := []struct {
		name          string
		claimedUserID int64
		header        string
		setupMocks    func(users *MockUserRepository, tokens *MockTokenService)
		expected      bool
	}{
		{
			name:          "token subject matches claimed user",
			claimedUserID: 7,
			header:        "Bearer good-token",
			setupMocks: func(users *MockUserRepository, tokens *MockTokenService) {
				users.On("FindByID", mock.Anything, int64(7)).Return(owner, nil)
				tokens.On("ExtractUsername", "good-token").Return("angler", nil)
			},
			expected: true,
		},
		{
			name:          "token subject belongs to a different user",
			claimedUserID: 7,
			header:        "Bearer other-token",
			setupMocks: func(users *MockUserRepository, tokens *MockTokenService) {
				users.On("FindByID", mock.Anything, int64(7)).Return(owner, nil)
				tokens.On("ExtractUsername", "other-token").Return("intruder", nil)
			},
			expected: false,
		},
		{
			name:          "claimed user does not exist",
			claimedUserID: 99,
			header:        "Bearer good-token",
			setupMocks: func(users *MockUserRepository, tokens *MockTokenService) {
				users.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)
			},
			expected: false,
		},
		{
			name:          "user lookup fails",
			claimedUserID: 7,
			header:        "Bearer good-token",
			setupMocks: func(users *MockUserRepository, tokens *MockTokenService) {
				users.On("FindByID", mock.Anything, int64(7)).Return(nil, errors.New("db down"))
			},
			expected: false,
		},
		{
			name:          "missing authorization header",
			claimedUserID: 7,
			header:        "",
			setupMocks: func(users *MockUserRepository, tokens *MockTokenService) {
				users.On("FindByID", mock.Anything, int64(7)).Return(owner, nil)
			},
			expected: false,
		},
		{
			name:          "header without bearer prefix",
			claimedUserID: 7,
			header:        "Basic dXNlcjpwYXNz",
			setupMocks: func(users *MockUserRepository, tokens *MockTokenService) {
				users.On("FindByID", mock.Anything, int64(7)).Return(owner, nil)
			},
			expected: false,
		},
		{
			name:          "token does not decode",
			claimedUserID: 7,
			header:        "Bearer garbage",
			setupMocks: func(users *MockUserRepository, tokens *MockTokenService) {
				users.On("FindByID", mock.Anything, int64(7)).Return(owner, nil)
				tokens.On("ExtractUsername", "garbage").Return("", errors.New("invalid token"))
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			tokens := new(MockTokenService)
			tt.setupMocks(users, tokens)

			service := NewOwnershipService(users, tokens, zap.NewNop())

			result := service.Verify(context.Background(), tt.claimedUserID, tt.header)

			assert.Equal(t, tt.expected, result)
			users.AssertExpectations(t)
			tokens.AssertExpectations(t)
		})
	}
}
