package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/topiclog/internal/adapter/storage/statements"
	"github.com/heartmarshall/topiclog/internal/domain"
)

// Store is the embedded storage backend.
type Store struct {
	db        *sql.DB
	stmts     statements.Builder
	opTimeout time.Duration
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock used to stamp appended records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func newStore(db *sql.DB, opTimeout time.Duration, opts ...Option) *Store {
	s := &Store{
		db:        db,
		stmts:     statements.New(squirrel.Question),
		opTimeout: opTimeout,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

// CreateUser inserts a user and returns its id.
// Returns domain.ErrDuplicateUser if the username is taken.
func (s *Store) CreateUser(ctx context.Context, username, credential string, displayName *string) (int64, error) {
	query, args, err := s.stmts.InsertUser(username, credential, displayName)
	if err != nil {
		return 0, fmt.Errorf("build insert user: %w", err)
	}

	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	var id int64
	if err := s.db.QueryRowContext(opCtx, query, args...).Scan(&id); err != nil {
		err = mapError(ctx, err, "user", username)
		if errors.Is(err, domain.ErrAlreadyExists) {
			return 0, fmt.Errorf("user %s: %w", username, domain.ErrDuplicateUser)
		}
		return 0, err
	}

	return id, nil
}

// FindUserByName returns the user with the given username or domain.ErrNotFound.
func (s *Store) FindUserByName(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := s.stmts.UserByName(username)
	if err != nil {
		return nil, fmt.Errorf("build user by name: %w", err)
	}
	return s.getUser(ctx, query, args, username)
}

// FindUserByID returns the user with the given id or domain.ErrNotFound.
func (s *Store) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	query, args, err := s.stmts.UserByID(id)
	if err != nil {
		return nil, fmt.Errorf("build user by id: %w", err)
	}
	return s.getUser(ctx, query, args, id)
}

func (s *Store) getUser(ctx context.Context, query string, args []any, key any) (*domain.User, error) {
	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	var row statements.UserRow
	if err := sqlscan.Get(opCtx, s.db, &row, query, args...); err != nil {
		return nil, mapError(ctx, err, "user", key)
	}
	return row.ToDomain(), nil
}

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

// AppendRecord inserts a record stamped with the current wall clock in
// milliseconds and returns the row as stored.
func (s *Store) AppendRecord(ctx context.Context, rec domain.NewRecord) (*domain.TopicRecord, error) {
	query, args, err := s.stmts.InsertRecord(rec, s.now().UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("build insert record: %w", err)
	}

	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	var row statements.RecordRow
	if err := sqlscan.Get(opCtx, s.db, &row, query, args...); err != nil {
		return nil, mapError(ctx, err, "record for user", rec.UserID)
	}

	stored := row.ToDomain()
	return &stored, nil
}

// ListRecords returns a user's records newest first.
// Returns an empty slice (not nil) when the user has none.
func (s *Store) ListRecords(ctx context.Context, userID int64) ([]domain.TopicRecord, error) {
	query, args, err := s.stmts.ListRecords(userID)
	if err != nil {
		return nil, fmt.Errorf("build list records: %w", err)
	}

	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	var rows []statements.RecordRow
	if err := sqlscan.Select(opCtx, s.db, &rows, query, args...); err != nil {
		return nil, mapError(ctx, err, "records of user", userID)
	}

	return statements.RecordsToDomain(rows), nil
}

// RenameRecord sets a record's title. Returns domain.ErrNotFound for an unknown id.
func (s *Store) RenameRecord(ctx context.Context, id int64, title string) error {
	query, args, err := s.stmts.RenameRecord(id, title)
	if err != nil {
		return fmt.Errorf("build rename record: %w", err)
	}
	return s.execOne(ctx, query, args, id)
}

// DeleteRecord removes a record. Returns domain.ErrNotFound for an unknown id.
func (s *Store) DeleteRecord(ctx context.Context, id int64) error {
	query, args, err := s.stmts.DeleteRecord(id)
	if err != nil {
		return fmt.Errorf("build delete record: %w", err)
	}
	return s.execOne(ctx, query, args, id)
}

// ClearRecords removes every record of a user. Clearing an empty log succeeds.
func (s *Store) ClearRecords(ctx context.Context, userID int64) error {
	query, args, err := s.stmts.ClearRecords(userID)
	if err != nil {
		return fmt.Errorf("build clear records: %w", err)
	}

	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.db.ExecContext(opCtx, query, args...); err != nil {
		return mapError(ctx, err, "records of user", userID)
	}
	return nil
}

// execOne runs a statement that must affect exactly one record.
func (s *Store) execOne(ctx context.Context, query string, args []any, id int64) error {
	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(opCtx, query, args...)
	if err != nil {
		return mapError(ctx, err, "record", id)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return mapError(ctx, err, "record", id)
	}
	if n == 0 {
		return fmt.Errorf("record %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

// Ping checks that the database file is reachable.
func (s *Store) Ping(ctx context.Context) error {
	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.PingContext(opCtx); err != nil {
		return mapError(ctx, err, "database", "sqlite")
	}
	return nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
