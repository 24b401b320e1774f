package utils

import (
	"regexp"
	"strings"
)

// FallbackSlug is used when slugging produces an empty string.
const FallbackSlug = "icon-pack"

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns arbitrary text into a filesystem friendly slug.
// The result is lowercase with non-alphanumeric runs collapsed to a
// single hyphen; an empty result falls back to FallbackSlug.
func Slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = nonAlnumRe.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")
	if value == "" {
		return FallbackSlug
	}
	return value
}

// IconFileName returns the canonical output filename for an icon name,
// without any directory component. The extension is always .png, no
// matter what format the source asset has.
func IconFileName(value string) string {
	return Slugify(value) + ".png"
}
