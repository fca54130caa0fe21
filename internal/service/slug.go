package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	slugStrip   = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe slug from a title: lowercase, non-word
// characters stripped, whitespace runs turned into single hyphens, hyphen
// runs collapsed. The unix-millisecond suffix keeps slugs globally unique
// even for repeated titles. Deterministic for a given title and timestamp.
func GenerateSlug(title string, now time.Time) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return fmt.Sprintf("%s-%d", s, now.UnixMilli())
}
