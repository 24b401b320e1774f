// Package catalog scans icon directories and resolves, for each
// logical icon name, the single best candidate file among the
// format/size/location variants a theme typically carries.
//
// Two selection algorithms live here on purpose. Collect seeds from an
// installed theme and lets traversal order decide (first stem wins);
// CollectWeighted imports an already-assembled pack and scores
// candidates instead. They stay separate, chosen by entry point.
package catalog

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/stromschlag/pkg/logging"
	"github.com/arthur-debert/stromschlag/pkg/types"
)

// IconSubdirs are the semantically meaningful theme subdirectories,
// scanned in priority order.
var IconSubdirs = []string{
	"apps",
	"actions",
	"status",
	"panel",
	"ui",
	"system",
	"devices",
	"places",
	"categories",
	"mimetypes",
}

// AllowedExtensions are the raster/vector formats accepted as icon
// sources, in priority order.
var AllowedExtensions = []string{".png", ".svg", ".svgz"}

// vectorExtensions are the formats that go into the scalable bucket.
var vectorExtensions = map[string]bool{".svg": true, ".svgz": true}

// Entry is one resolved (logical name, source file, category) triple.
type Entry struct {
	// Name is the file stem, used as the logical icon name
	Name string

	// Path is the source file path
	Path string

	// Category is the subdirectory the file was found under
	Category string
}

// IsVectorPath reports whether the file has a scalable vector format.
func IsVectorPath(path string) bool {
	return vectorExtensions[strings.ToLower(filepath.Ext(path))]
}

// ToIconDefinitions converts catalog entries into icon definitions.
func ToIconDefinitions(entries []Entry) []types.IconDefinition {
	icons := make([]types.IconDefinition, 0, len(entries))
	for _, entry := range entries {
		icons = append(icons, types.IconDefinition{
			Name:       entry.Name,
			SourcePath: entry.Path,
			Category:   entry.Category,
		})
	}
	return icons
}

// Collect scans a theme root and returns de-duplicated entries in
// priority order: category-list order, then extension-list order, then
// lexical enumeration order. The first file seen for a stem wins.
// limit caps the result (zero or negative means unlimited); the result
// is always a prefix of the unlimited traversal. Unreadable paths are
// skipped, never reported.
func Collect(themeRoot string, limit int) []Entry {
	logger := logging.GetLogger("catalog")

	// One walk, bucketed by (category, extension) priority. Iterating
	// the buckets in list order reproduces the per-pattern traversal
	// order exactly.
	buckets := make(map[int][]Entry)

	err := filepath.WalkDir(themeRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Trace().Err(err).Str("path", path).Msg("Skipping unreadable path")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		extIdx := indexOf(AllowedExtensions, ext)
		if extIdx < 0 {
			return nil
		}

		rel, err := filepath.Rel(themeRoot, path)
		if err != nil {
			return nil
		}
		parts := strings.Split(filepath.ToSlash(filepath.Dir(rel)), "/")

		stem := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		for catIdx, category := range IconSubdirs {
			if !contains(parts, category) {
				continue
			}
			key := catIdx*len(AllowedExtensions) + extIdx
			buckets[key] = append(buckets[key], Entry{
				Name:     stem,
				Path:     path,
				Category: category,
			})
		}
		return nil
	})
	if err != nil {
		logger.Warn().Err(err).Str("root", themeRoot).Msg("Theme scan aborted")
		return nil
	}

	var entries []Entry
	seen := make(map[string]bool)
	for key := 0; key < len(IconSubdirs)*len(AllowedExtensions); key++ {
		for _, entry := range buckets[key] {
			if seen[entry.Name] {
				continue
			}
			seen[entry.Name] = true
			entries = append(entries, entry)
			if limit > 0 && len(entries) >= limit {
				return entries
			}
		}
	}
	return entries
}

// CollectWeighted scans an already-assembled pack directory and picks,
// for each stem, the candidate with the lowest weight: +1 if not a
// vector format, +2 if not under a scalable directory, +1 if not under
// an apps or mimetypes category. Earlier-seen candidates win ties.
// The result is sorted by name.
func CollectWeighted(dir string) []Entry {
	logger := logging.GetLogger("catalog")

	type scored struct {
		weight int
		entry  Entry
	}
	winners := make(map[string]scored)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Trace().Err(err).Str("path", path).Msg("Skipping unreadable path")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if indexOf(AllowedExtensions, ext) < 0 {
			return nil
		}

		parts := make(map[string]bool)
		for _, part := range strings.Split(filepath.ToSlash(path), "/") {
			parts[strings.ToLower(part)] = true
		}

		weight := 0
		if !vectorExtensions[ext] {
			weight++
		}
		if !parts["scalable"] {
			weight += 2
		}
		if !parts["apps"] && !parts["mimetypes"] {
			weight++
		}

		stem := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		if existing, ok := winners[stem]; ok && existing.weight <= weight {
			return nil
		}

		category := ""
		if parent := filepath.Dir(path); filepath.Clean(parent) != filepath.Clean(dir) {
			category = filepath.Base(parent)
		}
		winners[stem] = scored{weight: weight, entry: Entry{
			Name:     stem,
			Path:     path,
			Category: category,
		}}
		return nil
	})
	if err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("Pack scan aborted")
		return nil
	}

	names := make([]string, 0, len(winners))
	for name := range winners {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, winners[name].entry)
	}
	return entries
}

func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return -1
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
