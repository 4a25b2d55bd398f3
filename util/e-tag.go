package util

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// GenerateETag returns a quoted strong entity tag for content, ready to be
// written to the ETag header. []byte and string are hashed as-is; anything
// else is hashed through its JSON form, falling back to %v when it cannot
// be marshaled.
func GenerateETag(content any) string {
	var data []byte

	switch v := content.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		var err error
		if data, err = json.Marshal(content); err != nil {
			data = fmt.Appendf(nil, "%v", content)
		}
	}

	hash := sha1.Sum(data)
	return `"` + hex.EncodeToString(hash[:]) + `"`
}

// MatchETag reports whether an If-None-Match header value matches etag.
// It accepts the "*" wildcard, comma-separated lists and weak validators.
func MatchETag(ifNoneMatch, etag string) bool {
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
