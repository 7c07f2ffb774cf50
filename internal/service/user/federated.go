package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/topiclog/internal/domain"
)

// SignInFederated finds or creates the account bound to an external identity.
// The stored credential is a marker, so the account cannot sign in by password.
func (s *Service) SignInFederated(ctx context.Context, input FederatedInput) (*domain.User, error) {
	input.Provider = strings.ToLower(strings.TrimSpace(input.Provider))
	input.Subject = strings.TrimSpace(input.Subject)

	if err := input.Validate(s.cfg.IsProviderAllowed); err != nil {
		return nil, err
	}

	username := federatedUsername(input.Provider, input.Subject)

	user, err := s.users.FindUserByName(ctx, username)
	if err == nil {
		s.log.InfoContext(ctx, "federated sign-in",
			slog.Int64("user_id", user.ID),
			slog.String("provider", input.Provider))
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("user.SignInFederated find: %w", err)
	}

	credential := domain.FederatedCredentialPrefix + input.Provider
	id, err := s.users.CreateUser(ctx, username, credential, optionalName(input.DisplayName))
	if errors.Is(err, domain.ErrAlreadyExists) {
		// A concurrent sign-in created the account first.
		user, err = s.users.FindUserByName(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("user.SignInFederated refetch: %w", err)
		}
		return user, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user.SignInFederated create: %w", err)
	}

	user = &domain.User{
		ID:          id,
		Username:    username,
		Credential:  credential,
		DisplayName: strings.TrimSpace(input.DisplayName),
	}
	if user.DisplayName == "" {
		user.DisplayName = username
	}

	s.log.InfoContext(ctx, "federated account created",
		slog.Int64("user_id", id),
		slog.String("provider", input.Provider))

	return user, nil
}
