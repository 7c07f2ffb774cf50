package provider

import "strings"

// Summary is a page summary from the knowledge source.
// Extract is "" when the page exists but has no prose summary.
type Summary struct {
	Title     string
	Extract   string
	Thumbnail *string
	ImageURL  *string
}

// HasExtract reports whether the summary carries non-blank prose.
func (s *Summary) HasExtract() bool {
	return s != nil && strings.TrimSpace(s.Extract) != ""
}
