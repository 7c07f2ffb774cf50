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

// Register creates a local account with a bcrypt-hashed password.
// Returns ErrDuplicateUser if the username is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.DisplayName = strings.TrimSpace(input.DisplayName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("user.Register hash password: %w", err)
	}

	id, err := s.users.CreateUser(ctx, input.Username, string(hash), optionalName(input.DisplayName))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrDuplicateUser
		}
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	user := &domain.User{
		ID:          id,
		Username:    input.Username,
		Credential:  string(hash),
		DisplayName: input.DisplayName,
	}
	if user.DisplayName == "" {
		user.DisplayName = user.Username
	}

	s.log.InfoContext(ctx, "user registered", slog.Int64("user_id", id))

	return user, nil
}
