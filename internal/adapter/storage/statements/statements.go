// Package statements builds the SQL shared by every storage engine.
// Engines differ only in the placeholder format they pass to New, so column
// sets, NULL handling and ordering cannot drift between them.
package statements

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/topiclog/internal/domain"
)

const (
	tableUsers   = "users"
	tableRecords = "records"
)

var (
	userColumns   = []string{"id", "username", "credential", "display_name"}
	recordColumns = []string{"id", "user_id", "query", "title", "definition", "thumbnail", "image_url", `"timestamp"`}
)

// Builder produces SQL text and arguments for one placeholder dialect.
type Builder struct {
	sb squirrel.StatementBuilderType
}

// New returns a Builder using the given placeholder format
// (squirrel.Dollar for PostgreSQL, squirrel.Question for SQLite).
func New(ph squirrel.PlaceholderFormat) Builder {
	return Builder{sb: squirrel.StatementBuilder.PlaceholderFormat(ph)}
}

// InsertUser inserts a user and returns its generated id.
// A nil or blank displayName falls back to the username.
func (b Builder) InsertUser(username, credential string, displayName *string) (string, []any, error) {
	return b.sb.Insert(tableUsers).
		Columns("username", "credential", "display_name").
		Values(username, credential, DisplayNameOrDefault(username, displayName)).
		Suffix("RETURNING id").
		ToSql()
}

// UserByName selects a user by username.
func (b Builder) UserByName(username string) (string, []any, error) {
	return b.sb.Select(userColumns...).
		From(tableUsers).
		Where(squirrel.Eq{"username": username}).
		ToSql()
}

// UserByID selects a user by primary key.
func (b Builder) UserByID(id int64) (string, []any, error) {
	return b.sb.Select(userColumns...).
		From(tableUsers).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// InsertRecord inserts a record stamped with timestampMs and returns the
// stored row.
func (b Builder) InsertRecord(rec domain.NewRecord, timestampMs int64) (string, []any, error) {
	return b.sb.Insert(tableRecords).
		Columns("user_id", "query", "title", "definition", "thumbnail", "image_url", `"timestamp"`).
		Values(rec.UserID, rec.Query, rec.Title, rec.Definition, rec.Thumbnail, rec.ImageURL, timestampMs).
		Suffix("RETURNING " + strings.Join(recordColumns, ", ")).
		ToSql()
}

// ListRecords selects a user's records newest first; equal timestamps are
// ordered by id so later inserts come first.
func (b Builder) ListRecords(userID int64) (string, []any, error) {
	return b.sb.Select(recordColumns...).
		From(tableRecords).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy(`"timestamp" DESC`, "id DESC").
		ToSql()
}

// RenameRecord sets the title of one record.
func (b Builder) RenameRecord(id int64, title string) (string, []any, error) {
	return b.sb.Update(tableRecords).
		Set("title", title).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// DeleteRecord deletes one record.
func (b Builder) DeleteRecord(id int64) (string, []any, error) {
	return b.sb.Delete(tableRecords).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// ClearRecords deletes every record of a user.
func (b Builder) ClearRecords(userID int64) (string, []any, error) {
	return b.sb.Delete(tableRecords).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
}

// DisplayNameOrDefault returns the trimmed display name, or the username when
// the display name is nil or blank.
func DisplayNameOrDefault(username string, displayName *string) string {
	if displayName == nil {
		return username
	}
	if trimmed := strings.TrimSpace(*displayName); trimmed != "" {
		return trimmed
	}
	return username
}
