// pkg/types/types_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp filesystem
// PURPOSE: Test IconDefinition and PackSettings behavior

package types_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/stromschlag/pkg/types"
)

func TestIconDefinitionHasSourceAsset(t *testing.T) {
	tmp := t.TempDir()
	source := filepath.Join(tmp, "sample.png")
	require.NoError(t, os.WriteFile(source, []byte("data"), 0644))

	tests := []struct {
		name string
		icon types.IconDefinition
		want bool
	}{
		{"existing_file", types.IconDefinition{Name: "sample", SourcePath: source}, true},
		{"no_path", types.IconDefinition{Name: "sample"}, false},
		{"missing_file", types.IconDefinition{Name: "sample", SourcePath: filepath.Join(tmp, "gone.png")}, false},
		{"directory", types.IconDefinition{Name: "sample", SourcePath: tmp}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.icon.HasSourceAsset())
		})
	}
}

func TestIconDefinitionResolvedGlyph(t *testing.T) {
	assert.Equal(t, "T", types.IconDefinition{Name: "terminal", Glyph: "T"}.ResolvedGlyph())
	assert.Equal(t, "t", types.IconDefinition{Name: "terminal"}.ResolvedGlyph())
	assert.Equal(t, "?", types.IconDefinition{}.ResolvedGlyph())
	// Multi-rune glyphs collapse to the first rune
	assert.Equal(t, "ä", types.IconDefinition{Glyph: "äbc"}.ResolvedGlyph())
}

func TestPackSettingsThemeComment(t *testing.T) {
	withDescription := types.PackSettings{Author: "Tester", Description: "Demo"}
	assert.Equal(t, "Demo", withDescription.ThemeComment())

	withoutDescription := types.PackSettings{Author: "Tester"}
	assert.Equal(t, "Icon theme crafted by Tester", withoutDescription.ThemeComment())
}

func TestPackSettingsResolvedTargets(t *testing.T) {
	tests := []struct {
		name    string
		targets []string
		want    []string
	}{
		{"empty_defaults_to_both", nil, []string{"gnome", "kde"}},
		{"kde_only", []string{"kde"}, []string{"kde"}},
		{"unknown_filtered", []string{"windows", "gnome"}, []string{"gnome"}},
		{"all_unknown_defaults_to_both", []string{"windows", "haiku"}, []string{"gnome", "kde"}},
		{"order_is_canonical", []string{"kde", "gnome"}, []string{"gnome", "kde"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := types.PackSettings{Targets: tt.targets}
			assert.Equal(t, tt.want, s.ResolvedTargets())
		})
	}
}

func TestPackSettingsNormalized(t *testing.T) {
	s := types.PackSettings{
		Name:      "Demo Pack",
		Author:    "tester",
		BaseSizes: []int{48, 32, 32, -1, 0, 16},
		Targets:   []string{"kde"},
	}

	n := s.Normalized()

	assert.Equal(t, []int{16, 32, 48}, n.BaseSizes)
	assert.Equal(t, []string{"kde"}, n.Targets)
	assert.Equal(t, "breeze", n.Inherits)
	assert.Equal(t, "build", n.OutputDir)
	assert.Equal(t, "demo-pack", n.ThemeSlug())

	// The receiver is untouched
	assert.Equal(t, []int{48, 32, 32, -1, 0, 16}, s.BaseSizes)
	assert.Empty(t, s.Inherits)
}

func TestPackSettingsNormalizedEmptySizes(t *testing.T) {
	n := types.PackSettings{Name: "x"}.Normalized()
	assert.Equal(t, types.DefaultBaseSizes, n.BaseSizes)
}
