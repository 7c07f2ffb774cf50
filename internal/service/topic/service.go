// Package topic adds, lists and edits the topics in a user's log.
package topic

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/topiclog/internal/domain"
	"github.com/heartmarshall/topiclog/internal/metrics"
	"github.com/heartmarshall/topiclog/internal/service/resolver"
)

type recordStore interface {
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	AppendRecord(ctx context.Context, rec domain.NewRecord) (*domain.TopicRecord, error)
	ListRecords(ctx context.Context, userID int64) ([]domain.TopicRecord, error)
	RenameRecord(ctx context.Context, id int64, title string) error
	DeleteRecord(ctx context.Context, id int64) error
	ClearRecords(ctx context.Context, userID int64) error
}

type topicResolver interface {
	Resolve(ctx context.Context, query string) resolver.Outcome
}

// User-facing result messages.
const (
	MessageAdded    = "Topic added successfully!"
	MessageDegraded = "Could not fetch description, but topic saved with placeholder."
)

// Service provides topic log operations.
type Service struct {
	store    recordStore
	resolver topicResolver
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	store recordStore,
	res topicResolver,
	m *metrics.Metrics,
) *Service {
	return &Service{
		store:    store,
		resolver: res,
		metrics:  m,
		log:      log.With("service", "topic"),
	}
}
