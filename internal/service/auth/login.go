package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/topiclog/internal/service/user"
)

// Register creates a local account and signs it in.
func (s *Service) Register(ctx context.Context, input user.RegisterInput) (*AuthResult, error) {
	u, err := s.accounts.Register(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := s.issueToken(u)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}
	return result, nil
}

// Login signs in with username and password.
func (s *Service) Login(ctx context.Context, input user.AuthenticateInput) (*AuthResult, error) {
	u, err := s.accounts.Authenticate(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := s.issueToken(u)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}
	return result, nil
}

// LoginWithOAuth verifies a provider authorization code, then finds or
// creates the federated account it identifies.
func (s *Service) LoginWithOAuth(ctx context.Context, input OAuthInput) (*AuthResult, error) {
	input.Provider = strings.ToLower(strings.TrimSpace(input.Provider))

	if err := input.Validate(s.cfg.IsProviderAllowed); err != nil {
		return nil, err
	}

	verifier, ok := s.verifiers[input.Provider]
	if !ok {
		return nil, fmt.Errorf("auth.LoginWithOAuth: no verifier for %q", input.Provider)
	}

	identity, err := verifier.VerifyCode(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithOAuth verify: %w", err)
	}

	u, err := s.accounts.SignInFederated(ctx, user.FederatedInput{
		Provider:    identity.Provider,
		Subject:     identity.Subject,
		DisplayName: identity.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithOAuth: %w", err)
	}

	result, err := s.issueToken(u)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithOAuth: %w", err)
	}
	return result, nil
}
