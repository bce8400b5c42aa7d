// Package security sanitises user-supplied note text before it is stored.
//
// Titles and tags are plain text and are stored as written, minus
// surrounding space and control characters. Content keeps the usual
// user-generated-content markup (paragraphs, lists, emphasis, links) and
// loses scripts, styles, iframes and event handler attributes. Text that
// carries no markup to remove is stored unchanged, so "Tom & Jerry" or
// "a < b" never come back escaped.
package security

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// NoteSanitizer cleans the text fields of a note. Implementations are safe
// for concurrent use and idempotent on their own output.
type NoteSanitizer interface {
	SanitizeTitle(title string) string
	SanitizeContent(content string) string
	// SanitizeTags cleans every tag the way SanitizeTitle does and drops
	// tags that end up empty. A nil input yields nil.
	SanitizeTags(tags []string) []string
}

type noteSanitizer struct {
	ugc *bluemonday.Policy
}

// NewNoteSanitizer builds a NoteSanitizer on bluemonday's UGC policy.
func NewNoteSanitizer() NoteSanitizer {
	ugc := bluemonday.UGCPolicy()
	ugc.AllowRelativeURLs(false)
	ugc.RequireNoReferrerOnLinks(true)

	return &noteSanitizer{ugc: ugc}
}

func (s *noteSanitizer) SanitizeTitle(title string) string {
	return plainText(title)
}

// SanitizeContent returns content untouched when the policy would only
// escape it. Otherwise the sanitised HTML is returned.
func (s *noteSanitizer) SanitizeContent(content string) string {
	content = strings.TrimSpace(content)

	cleaned := s.ugc.Sanitize(content)
	if html.UnescapeString(cleaned) == content {
		return content
	}
	return strings.TrimSpace(cleaned)
}

func (s *noteSanitizer) SanitizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}

	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = plainText(tag)
		if tag == "" {
			continue
		}
		cleaned = append(cleaned, tag)
	}
	return cleaned
}

func plainText(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
