package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/heartmarshall/topiclog/internal/domain"
)

func openTestStore(t *testing.T, opTimeout time.Duration) *Store {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"), opTimeout, logger)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	got := mapError(context.Background(), fmt.Errorf("scan: %w", sql.ErrNoRows), "user", "ghost")

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("mapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := "user ghost: not found"; got.Error() != want {
		t.Errorf("mapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_CallerCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := mapError(ctx, context.Canceled, "record", 1)
	if !errors.Is(got, context.Canceled) || errors.Is(got, domain.ErrStorageUnavailable) {
		t.Errorf("mapError(caller canceled) = %v, want plain context.Canceled", got)
	}
}

func TestMapError_UnknownIsUnavailable(t *testing.T) {
	t.Parallel()

	got := mapError(context.Background(), sql.ErrConnDone, "record", 1)
	if !errors.Is(got, domain.ErrStorageUnavailable) || !errors.Is(got, sql.ErrConnDone) {
		t.Errorf("mapError(ErrConnDone) = %v, want unavailable wrapping the cause", got)
	}
}

func TestStore_UniqueViolationIsDuplicateUser(t *testing.T) {
	store := openTestStore(t, time.Second)
	ctx := context.Background()

	if _, err := store.CreateUser(ctx, "twin", "h", nil); err != nil {
		t.Fatalf("first CreateUser: %v", err)
	}
	_, err := store.CreateUser(ctx, "twin", "h", nil)
	if !errors.Is(err, domain.ErrDuplicateUser) {
		t.Errorf("second CreateUser error = %v, want ErrDuplicateUser", err)
	}
}

func TestStore_ForeignKeyEnforced(t *testing.T) {
	store := openTestStore(t, time.Second)

	_, err := store.AppendRecord(context.Background(), domain.NewRecord{UserID: 77, Query: "q", Title: "t", Definition: "d"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("AppendRecord(unknown user) error = %v, want ErrNotFound", err)
	}
}

func TestStore_ConnectionHeldTimesOut(t *testing.T) {
	store := openTestStore(t, 50*time.Millisecond)
	ctx := context.Background()

	// Occupy the only connection.
	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("BeginTx: %v", err)
	}
	defer tx.Rollback()

	start := time.Now()
	_, err = store.ListRecords(ctx, 1)
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Errorf("ListRecords() error = %v, want ErrStorageUnavailable", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("ListRecords() waited %v, want bounded by the operation timeout", elapsed)
	}
}

func TestStore_ClosedIsUnavailable(t *testing.T) {
	store := openTestStore(t, time.Second)
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	_, err := store.FindUserByName(context.Background(), "anyone")
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Errorf("FindUserByName() after Close error = %v, want ErrStorageUnavailable", err)
	}
	if err := store.Ping(context.Background()); !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Errorf("Ping() after Close error = %v, want ErrStorageUnavailable", err)
	}
}

func TestDSN(t *testing.T) {
	t.Parallel()

	got := dsn("/tmp/x.db")
	for _, want := range []string{"file:/tmp/x.db?", "foreign_keys%281%29", "busy_timeout%285000%29", "journal_mode%28WAL%29"} {
		if !strings.Contains(got, want) {
			t.Errorf("dsn() = %q, missing %q", got, want)
		}
	}
}
