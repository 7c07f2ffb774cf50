package resolver

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sentenceSep separates sentences in a summary extract.
const sentenceSep = ". "

// maxSentences is how many sentences of an extract are kept.
const maxSentences = 2

// Normalize lower-cases query, collapses whitespace and title-cases the first
// letter of every word. Normalize(Normalize(q)) == Normalize(q).
func Normalize(query string) string {
	words := strings.Fields(strings.ToLower(query))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError && size <= 1 {
			continue
		}
		words[i] = string(unicode.ToTitle(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Truncate keeps the first two ". "-separated sentences of extract and makes
// the result end in exactly one period. Returns "" when nothing but
// punctuation and whitespace is left.
func Truncate(extract string) string {
	parts := strings.SplitN(extract, sentenceSep, maxSentences+1)
	if len(parts) > maxSentences {
		parts = parts[:maxSentences]
	}

	text := strings.TrimRight(strings.Join(parts, sentenceSep), ". \t\r\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return text + "."
}
