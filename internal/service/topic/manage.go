package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/topiclog/internal/domain"
)

// ListTopics returns the user's records newest first.
func (s *Service) ListTopics(ctx context.Context, userID int64) ([]domain.TopicRecord, error) {
	records, err := s.store.ListRecords(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return records, nil
}

// RenameTopic changes a record's title.
func (s *Service) RenameTopic(ctx context.Context, id int64, title string) error {
	if errs := validateTitle(title); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}

	if err := s.store.RenameRecord(ctx, id, strings.TrimSpace(title)); err != nil {
		return fmt.Errorf("rename topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic renamed", slog.Int64("record_id", id))
	return nil
}

// RemoveTopic deletes one record.
func (s *Service) RemoveTopic(ctx context.Context, id int64) error {
	if err := s.store.DeleteRecord(ctx, id); err != nil {
		return fmt.Errorf("remove topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic removed", slog.Int64("record_id", id))
	return nil
}

// ClearTopics deletes every record of the user.
func (s *Service) ClearTopics(ctx context.Context, userID int64) error {
	if err := s.store.ClearRecords(ctx, userID); err != nil {
		return fmt.Errorf("clear topics: %w", err)
	}

	s.log.InfoContext(ctx, "topics cleared", slog.Int64("user_id", userID))
	return nil
}
