package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

const bearerPrefix = "Bearer "

type ownershipService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	logger *zap.Logger
}

// NewOwnershipService creates the guard that checks whether the bearer token
// attached to a request belongs to the user the request claims to act for.
func NewOwnershipService(users ports.UserRepository, tokens ports.TokenService, logger *zap.Logger) ports.OwnershipService {
	return &ownershipService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Verify is read-only and never returns an error: a missing user, an absent
// or malformed Authorization header and an undecodable token all count as a
// mismatch, which callers turn into HTTP 403.
func (s *ownershipService) Verify(ctx context.Context, claimedUserID int64, authorizationHeader string) bool {
	user, err := s.users.FindByID(ctx, claimedUserID)
	if err != nil {
		s.logger.Error("ownership lookup failed", zap.Int64("user_id", claimedUserID), zap.Error(err))
		return false
	}

	if user == nil {
		return false
	}

	token := extractBearerToken(authorizationHeader)
	if token == "" {
		return false
	}

	tokenUsername, err := s.tokens.ExtractUsername(token)
	if err != nil {
		s.logger.Debug("token decoding failed", zap.Error(err))
		return false
	}

	return user.Username == tokenUsername
}

// extractBearerToken returns the raw token from an "Authorization: Bearer x"
// header value, or "" when the header is missing or malformed.
func extractBearerToken(header string) string {
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}
