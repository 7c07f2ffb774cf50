package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/topiclog/internal/domain"
)

// Profile returns the account with the given id.
func (s *Service) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Profile: %w", err)
	}

	return user, nil
}
