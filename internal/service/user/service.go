// Package user manages accounts: registration, password and federated
// sign-in, and profile lookup.
package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/topiclog/internal/config"
	"github.com/heartmarshall/topiclog/internal/domain"
)

type userStore interface {
	CreateUser(ctx context.Context, username, credential string, displayName *string) (int64, error)
	FindUserByName(ctx context.Context, username string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
}

// Service implements account operations.
type Service struct {
	log   *slog.Logger
	users userStore
	cfg   config.AuthConfig
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userStore, cfg config.AuthConfig) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		cfg:   cfg,
	}
}
