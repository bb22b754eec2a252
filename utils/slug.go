package utils

import (
	"regexp"
	"strings"
)

var slugRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// Slugify derives a URL-safe slug from an event title: lowercase,
// runs of non-alphanumerics collapsed to single hyphens, no leading or
// trailing hyphen.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// NormalizeSlug trims and lowercases a candidate slug and reports
// whether the result is a well-formed slug (lowercase letters, digits,
// and hyphens only; non-empty).
func NormalizeSlug(raw string) (string, bool) {
	slug := strings.ToLower(strings.TrimSpace(raw))
	if slug == "" || !slugRe.MatchString(slug) {
		return slug, false
	}
	return slug, true
}
