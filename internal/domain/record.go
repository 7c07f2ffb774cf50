package domain

// TopicRecord is one saved topic in a user's log.
type TopicRecord struct {
	ID         int64
	UserID     int64
	Query      string
	Title      string
	Definition *string
	Thumbnail  *string
	ImageURL   *string
	// Timestamp is unix milliseconds assigned by the storage backend.
	Timestamp int64
}

// DefinitionText returns the definition or an empty string when it is NULL.
func (r *TopicRecord) DefinitionText() string {
	if r.Definition == nil {
		return ""
	}
	return *r.Definition
}

// NewRecord holds the fields supplied by the caller when appending a record.
// ID and Timestamp are assigned by the backend.
type NewRecord struct {
	UserID     int64
	Query      string
	Title      string
	Definition string
	Thumbnail  *string
	ImageURL   *string
}
