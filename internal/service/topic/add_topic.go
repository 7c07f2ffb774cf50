package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/topiclog/internal/domain"
)

// AddTopicResult is the outcome of AddTopic.
type AddTopicResult struct {
	// Record is the topic exactly as the backend stored it.
	Record   domain.TopicRecord
	Degraded bool
	Message  string
}

// AddTopic resolves a description for the query and appends a record to the
// user's log. The record is stored even when resolution degrades; only a
// failed write fails the call, with domain.ErrPersistenceFailed.
func (s *Service) AddTopic(ctx context.Context, input AddTopicInput) (*AddTopicResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	query := strings.TrimSpace(input.Query)
	title := strings.TrimSpace(input.Title)

	if _, err := s.store.FindUserByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("add topic: user %d: %w", input.UserID, domain.ErrNotFound)
		}
		s.metrics.TopicAdded("failed")
		return nil, fmt.Errorf("add topic: %w: %w", domain.ErrPersistenceFailed, err)
	}

	outcome := s.resolver.Resolve(ctx, query)

	rec := domain.NewRecord{
		UserID:     input.UserID,
		Query:      query,
		Title:      title,
		Definition: outcome.Text,
		Thumbnail:  outcome.Thumbnail,
		ImageURL:   outcome.ImageURL,
	}

	// Once issued, the write completes or fails on its own even if the
	// caller goes away.
	writeCtx := context.WithoutCancel(ctx)

	stored, err := s.store.AppendRecord(writeCtx, rec)
	if err != nil {
		s.metrics.TopicAdded("failed")
		s.log.ErrorContext(ctx, "topic not saved",
			slog.Int64("user_id", input.UserID),
			slog.Bool("degraded", outcome.Degraded),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("add topic: %w: %w", domain.ErrPersistenceFailed, err)
	}

	status, message := "ok", MessageAdded
	if outcome.Degraded {
		status, message = "degraded", MessageDegraded
	}
	s.metrics.TopicAdded(status)

	s.log.InfoContext(ctx, "topic added",
		slog.Int64("user_id", input.UserID),
		slog.Int64("record_id", stored.ID),
		slog.Bool("degraded", outcome.Degraded),
		slog.String("reason", outcome.Reason),
	)

	return &AddTopicResult{
		Record:   *stored,
		Degraded: outcome.Degraded,
		Message:  message,
	}, nil
}
