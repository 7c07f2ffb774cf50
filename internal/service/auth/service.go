// Package auth issues access tokens for local and federated sign-in.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/topiclog/internal/auth"
	"github.com/heartmarshall/topiclog/internal/config"
	"github.com/heartmarshall/topiclog/internal/domain"
	"github.com/heartmarshall/topiclog/internal/service/user"
)

// accounts defines the account operations needed by auth service.
type accounts interface {
	Register(ctx context.Context, input user.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, input user.AuthenticateInput) (*domain.User, error)
	SignInFederated(ctx context.Context, input user.FederatedInput) (*domain.User, error)
}

// OAuthVerifier exchanges a provider authorization code for an identity.
type OAuthVerifier interface {
	VerifyCode(ctx context.Context, code string) (*auth.FederatedIdentity, error)
}

// jwtManager defines the token operations needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID int64) (string, error)
}

// Service implements sign-in flows that end in an access token.
type Service struct {
	log       *slog.Logger
	accounts  accounts
	verifiers map[string]OAuthVerifier
	jwt       jwtManager
	cfg       config.AuthConfig
}

// NewService creates a new auth service instance. verifiers is keyed by provider name.
func NewService(
	logger *slog.Logger,
	accounts accounts,
	verifiers map[string]OAuthVerifier,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		accounts:  accounts,
		verifiers: verifiers,
		jwt:       jwt,
		cfg:       cfg,
	}
}

func (s *Service) issueToken(u *domain.User) (*AuthResult, error) {
	token, err := s.jwt.GenerateAccessToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{AccessToken: token, User: u}, nil
}
