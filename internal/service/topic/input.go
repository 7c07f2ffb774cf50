package topic

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/topiclog/internal/domain"
)

const (
	maxQueryLen = 300
	maxTitleLen = 200
)

// AddTopicInput holds the parameters for adding a topic.
type AddTopicInput struct {
	UserID int64
	Query  string
	Title  string
}

// Validate checks all fields and collects all errors.
func (i AddTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}

	query := strings.TrimSpace(i.Query)
	switch {
	case !domain.IsStorableText(query):
		errs = append(errs, domain.FieldError{Field: "query", Message: "invalid characters"})
	case query == "":
		errs = append(errs, domain.FieldError{Field: "query", Message: "required"})
	case utf8.RuneCountInString(query) > maxQueryLen:
		errs = append(errs, domain.FieldError{Field: "query", Message: "max 300 characters"})
	}

	errs = append(errs, validateTitle(i.Title)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if !domain.IsStorableText(title) {
		return []domain.FieldError{{Field: "title", Message: "invalid characters"}}
	}
	if title == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return []domain.FieldError{{Field: "title", Message: "max 200 characters"}}
	}
	return nil
}
