package types

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/stromschlag/pkg/utils"
)

// Desktop targets a pack can be assembled for. The two layouts are
// structurally identical; only the directory name varies, so targets
// are a fixed string table rather than an interface.
const (
	TargetGnome = "gnome"
	TargetKde   = "kde"
)

// KnownTargets lists the supported targets in assembly order.
var KnownTargets = []string{TargetGnome, TargetKde}

// Default pack settings applied when a project file leaves them out.
var (
	DefaultInherits  = "breeze"
	DefaultBaseSizes = []int{16, 24, 32, 48, 64, 128}
	DefaultOutputDir = "build"
)

// PackSettings holds pack-level metadata for an icon pack.
type PackSettings struct {
	// Name is the pack display name
	Name string

	// Author is the pack author
	Author string

	// Description is the pack description, may be empty
	Description string

	// Inherits is the parent theme name written into index.theme
	Inherits string

	// BaseSizes are the pixel sizes to produce size buckets for
	BaseSizes []int

	// OutputDir is the directory the pack root is created under
	OutputDir string

	// Targets is the subset of KnownTargets to assemble for
	Targets []string
}

// ThemeSlug returns the filesystem-safe slug of the pack name, used as
// the pack root directory name.
func (s PackSettings) ThemeSlug() string {
	return utils.Slugify(s.Name)
}

// ThemeComment returns the Comment value for index.theme: the
// description, or a stock phrase naming the author when empty.
func (s PackSettings) ThemeComment() string {
	if s.Description != "" {
		return s.Description
	}
	return fmt.Sprintf("Icon theme crafted by %s", s.Author)
}

// ResolvedTargets returns the configured targets intersected with
// KnownTargets, preserving KnownTargets order. An empty intersection
// resolves to all known targets.
func (s PackSettings) ResolvedTargets() []string {
	configured := make(map[string]bool, len(s.Targets))
	for _, t := range s.Targets {
		configured[t] = true
	}

	var resolved []string
	for _, t := range KnownTargets {
		if configured[t] {
			resolved = append(resolved, t)
		}
	}
	if len(resolved) == 0 {
		resolved = append(resolved, KnownTargets...)
	}
	return resolved
}

// Normalized returns a copy of the settings with defaults filled in
// and base sizes sorted ascending with duplicates and non-positive
// values removed. The receiver is not modified.
func (s PackSettings) Normalized() PackSettings {
	out := s
	if out.Inherits == "" {
		out.Inherits = DefaultInherits
	}
	if out.OutputDir == "" {
		out.OutputDir = DefaultOutputDir
	}

	sizes := make([]int, 0, len(s.BaseSizes))
	seen := make(map[int]bool, len(s.BaseSizes))
	for _, size := range s.BaseSizes {
		if size <= 0 || seen[size] {
			continue
		}
		seen[size] = true
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		sizes = append(sizes, DefaultBaseSizes...)
	}
	sort.Ints(sizes)
	out.BaseSizes = sizes

	out.Targets = s.ResolvedTargets()
	return out
}
