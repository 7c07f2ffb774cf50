package statements

import "github.com/heartmarshall/topiclog/internal/domain"

// UserRow is the scan target for user selects.
type UserRow struct {
	ID          int64  `db:"id"`
	Username    string `db:"username"`
	Credential  string `db:"credential"`
	DisplayName string `db:"display_name"`
}

// ToDomain converts the row into a domain.User.
func (r UserRow) ToDomain() *domain.User {
	return &domain.User{
		ID:          r.ID,
		Username:    r.Username,
		Credential:  r.Credential,
		DisplayName: r.DisplayName,
	}
}

// RecordRow is the scan target for record selects. Nullable columns are
// pointers so NULL and "" stay distinguishable.
type RecordRow struct {
	ID         int64   `db:"id"`
	UserID     int64   `db:"user_id"`
	Query      string  `db:"query"`
	Title      string  `db:"title"`
	Definition *string `db:"definition"`
	Thumbnail  *string `db:"thumbnail"`
	ImageURL   *string `db:"image_url"`
	Timestamp  int64   `db:"timestamp"`
}

// ToDomain converts the row into a domain.TopicRecord.
func (r RecordRow) ToDomain() domain.TopicRecord {
	return domain.TopicRecord{
		ID:         r.ID,
		UserID:     r.UserID,
		Query:      r.Query,
		Title:      r.Title,
		Definition: r.Definition,
		Thumbnail:  r.Thumbnail,
		ImageURL:   r.ImageURL,
		Timestamp:  r.Timestamp,
	}
}

// RecordsToDomain converts rows, returning an empty (non-nil) slice for no rows.
func RecordsToDomain(rows []RecordRow) []domain.TopicRecord {
	out := make([]domain.TopicRecord, len(rows))
	for i, row := range rows {
		out[i] = row.ToDomain()
	}
	return out
}
