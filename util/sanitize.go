package util

import (
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy allows no elements and no attributes. A bluemonday policy is
// safe for concurrent use once it is no longer being configured.
var strictPolicy = bluemonday.StrictPolicy()

// quoteUnescaper undoes the quote encoding bluemonday applies to text.
// Quotes are only special inside attribute values, and no attribute survives
// the strict policy.
var quoteUnescaper = strings.NewReplacer("&#39;", "'", "&#34;", `"`)

// Sanitize strips all markup from an untrusted value and trims surrounding
// whitespace. The content of elements such as <script> and <style> is dropped
// together with the tags; plain text is kept. &, < and > in the text come
// back entity-encoded, quotes come back as-is.
//
// A nil value yields nil, so callers can keep "absent" apart from "empty".
func Sanitize(value *string) *string {
	if value == nil {
		return nil
	}

	cleaned := strings.TrimSpace(quoteUnescaper.Replace(strictPolicy.Sanitize(*value)))
	return &cleaned
}

// SanitizeAndTruncate runs Sanitize and then cuts the result down to at most
// maxLength characters. Length is counted in runes, so the cut never splits
// a UTF-8 sequence, and a cut landing inside an entity such as &amp; drops
// the whole entity. A negative maxLength is treated as 0.
func SanitizeAndTruncate(value *string, maxLength int) *string {
	cleaned := Sanitize(value)
	if cleaned == nil {
		return nil
	}

	truncated := truncateRunes(*cleaned, maxLength)
	if len(truncated) < len(*cleaned) {
		truncated = dropPartialEntity(truncated)
	}
	return &truncated
}

func truncateRunes(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}

	n := 0
	for i := range s {
		if n == maxLength {
			return s[:i]
		}
		n++
	}
	return s
}

// dropPartialEntity removes a trailing, unterminated character reference.
// Every '&' in sanitized text starts an entity, since a literal one is
// always encoded as &amp;.
func dropPartialEntity(s string) string {
	i := strings.LastIndexByte(s, '&')
	if i < 0 || strings.IndexByte(s[i:], ';') >= 0 {
		return s
	}
	return s[:i]
}
