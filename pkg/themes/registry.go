// Package themes discovers installed icon themes on the conventional
// GTK/KDE search paths and seeds new projects from them.
package themes

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/stromschlag/pkg/catalog"
	"github.com/arthur-debert/stromschlag/pkg/logging"
	"github.com/arthur-debert/stromschlag/pkg/types"
)

// PreferredThemes are the theme names tried, in order, when seeding a
// project without an explicit theme choice.
var PreferredThemes = []string{"breeze", "adwaita", "hicolor"}

// SystemIconDirs returns the conventional per-user and system icon
// theme roots, in lookup order.
func SystemIconDirs() []string {
	return []string{
		filepath.Join(xdg.DataHome, "icons"),
		filepath.Join(xdg.Home, ".icons"),
		"/usr/share/icons",
		"/usr/local/share/icons",
	}
}

// searchRoots returns extra paths first, then the system roots.
func searchRoots(extraSearchPaths []string) []string {
	roots := make([]string, 0, len(extraSearchPaths)+4)
	roots = append(roots, extraSearchPaths...)
	roots = append(roots, SystemIconDirs()...)
	return roots
}

// ListInstalled returns the icon theme directories discovered on the
// search roots. A directory qualifies iff it directly contains an
// index.theme file. Candidates are deduplicated by resolved absolute
// path (first occurrence wins) and sorted by name within each root.
func ListInstalled(extraSearchPaths []string) []types.ThemeCandidate {
	logger := logging.GetLogger("themes.registry")

	var candidates []types.ThemeCandidate
	seen := make(map[string]bool)

	for _, base := range searchRoots(extraSearchPaths) {
		info, err := os.Stat(base)
		if err != nil || !info.IsDir() {
			continue
		}

		entries, err := os.ReadDir(base)
		if err != nil {
			logger.Trace().Err(err).Str("root", base).Msg("Skipping unreadable search root")
			continue
		}

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() {
				names = append(names, entry.Name())
			}
		}
		sort.Strings(names)

		for _, name := range names {
			themeDir := filepath.Join(base, name)
			if _, err := os.Stat(filepath.Join(themeDir, "index.theme")); err != nil {
				continue
			}

			key := themeDir
			if resolved, err := filepath.EvalSymlinks(themeDir); err == nil {
				key = resolved
			}
			if abs, err := filepath.Abs(key); err == nil {
				key = abs
			}
			if seen[key] {
				continue
			}
			seen[key] = true

			candidates = append(candidates, types.ThemeCandidate{Name: name, Path: themeDir})
		}
	}

	logger.Debug().Int("count", len(candidates)).Msg("Found installed themes")
	return candidates
}

// DiscoverDefault tries each preferred theme name against each search
// root and returns the first theme directory that exists. The boolean
// is false when no preferred theme is installed, signaling the caller
// to prompt for manual selection.
func DiscoverDefault(preferred []string, extraSearchPaths []string) (string, bool) {
	if len(preferred) == 0 {
		preferred = PreferredThemes
	}

	roots := searchRoots(extraSearchPaths)
	for _, theme := range preferred {
		for _, base := range roots {
			candidate := filepath.Join(base, theme)
			if info, err := os.Stat(candidate); err == nil && info.IsDir() {
				return candidate, true
			}
		}
	}
	return "", false
}

// BlueprintResult is the outcome of seeding icons from a system theme.
type BlueprintResult struct {
	// Icons are the discovered icon definitions, empty when no theme matched
	Icons []types.IconDefinition

	// SourceTheme is the name of the theme the icons came from
	SourceTheme string

	// NeedsSelection is true when no preferred theme was found and the
	// caller must pick one manually
	NeedsSelection bool
}

// LoadBlueprint derives icon definitions from the first installed
// preferred theme. limit caps the number of icons; zero or negative
// means unlimited.
func LoadBlueprint(preferred []string, limit int, extraSearchPaths []string) BlueprintResult {
	logger := logging.GetLogger("themes.registry")

	root, ok := DiscoverDefault(preferred, extraSearchPaths)
	if ok {
		entries := catalog.Collect(root, limit)
		if len(entries) > 0 {
			logger.Info().
				Str("theme", filepath.Base(root)).
				Int("icons", len(entries)).
				Msg("Seeded icons from installed theme")
			return BlueprintResult{
				Icons:       catalog.ToIconDefinitions(entries),
				SourceTheme: filepath.Base(root),
			}
		}
	}
	return BlueprintResult{NeedsSelection: true}
}
