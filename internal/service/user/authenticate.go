package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/topiclog/internal/domain"
)

// Authenticate checks a username and password.
// Unknown users, wrong passwords and federated accounts all yield ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, input AuthenticateInput) (*domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.FindUserByName(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("user.Authenticate: %w", err)
	}

	if user.IsFederated() {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Credential), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	s.log.InfoContext(ctx, "user authenticated", slog.Int64("user_id", user.ID))

	return user, nil
}
