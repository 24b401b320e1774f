package types

import (
	"os"
	"strings"
)

// Default glyph colors applied when an icon does not set its own.
const (
	DefaultBackground = "#1d3557"
	DefaultForeground = "#f1faee"
)

// IconDefinition represents a single logical icon in a pack. The name
// is the stable identifier: it doubles as the output filename stem
// once slugged. SourcePath points at artwork on disk and is never
// copied until export; the glyph/color fields only matter when no
// source artwork exists.
type IconDefinition struct {
	// Name is the logical icon name, unique within a pack
	Name string

	// SourcePath is the path to the source artwork, empty if none
	SourcePath string

	// Category is the original subdirectory the icon came from (informational)
	Category string

	// Glyph is the character rendered when no source artwork exists
	Glyph string

	// Background is the glyph tile color as a #RRGGBB string
	Background string

	// Foreground is the glyph text color as a #RRGGBB string
	Foreground string
}

// HasSourceAsset reports whether the icon has a source path that
// resolves to an existing file on disk.
func (i IconDefinition) HasSourceAsset() bool {
	if i.SourcePath == "" {
		return false
	}
	info, err := os.Stat(i.SourcePath)
	return err == nil && !info.IsDir()
}

// ResolvedGlyph returns the single character to render for the icon:
// the first rune of the glyph field, falling back to the first rune of
// the name, then to "?".
func (i IconDefinition) ResolvedGlyph() string {
	text := strings.TrimSpace(i.Glyph)
	if text == "" {
		text = strings.TrimSpace(i.Name)
	}
	if text == "" {
		return "?"
	}
	return string([]rune(text)[0])
}

// BackgroundOrDefault returns the background color, or the default
// when unset.
func (i IconDefinition) BackgroundOrDefault() string {
	if i.Background == "" {
		return DefaultBackground
	}
	return i.Background
}

// ForegroundOrDefault returns the foreground color, or the default
// when unset.
func (i IconDefinition) ForegroundOrDefault() string {
	if i.Foreground == "" {
		return DefaultForeground
	}
	return i.Foreground
}
