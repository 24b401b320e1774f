// pkg/project/project_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp filesystem
// PURPOSE: Test project descriptor round-trips, defaults and errors

package project_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/stromschlag/pkg/errors"
	"github.com/arthur-debert/stromschlag/pkg/project"
	"github.com/arthur-debert/stromschlag/pkg/types"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "project.yaml")
	source := filepath.Join(tmp, "folder.png")
	require.NoError(t, os.WriteFile(source, []byte("data"), 0644))

	settings := types.PackSettings{
		Name:        "Test Pack",
		Author:      "Tester",
		Description: "Demo",
		Inherits:    "breeze",
		BaseSizes:   []int{32},
		OutputDir:   "build",
		Targets:     []string{"kde"},
	}
	icons := []types.IconDefinition{
		{Name: "Folder", Glyph: "F", Background: "#123456", Foreground: "#ffffff", SourcePath: source, Category: "apps"},
		{Name: "Gear", Glyph: "G", Background: "#654321", Foreground: "#eeeeee", Category: "actions"},
	}

	require.NoError(t, project.Save(path, settings, icons))

	loadedSettings, loadedIcons, err := project.Load(path)
	require.NoError(t, err)

	assert.Equal(t, settings, loadedSettings)
	require.Len(t, loadedIcons, 2)
	assert.Equal(t, "Folder", loadedIcons[0].Name)
	assert.Equal(t, source, loadedIcons[0].SourcePath)
	assert.Equal(t, "apps", loadedIcons[0].Category)
	assert.Equal(t, "G", loadedIcons[1].Glyph)
	assert.Equal(t, "#654321", loadedIcons[1].Background)
	assert.Equal(t, "actions", loadedIcons[1].Category)
	assert.Empty(t, loadedIcons[1].SourcePath)
}

func TestSaveWritesBanner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, project.Save(path, types.PackSettings{Name: "x"}, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# "), "descriptor should start with a comment banner")
}

func TestLoadToleratesBanner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")
	content := "# some tool wrote this\nname: Banner Pack\nauthor: Tester\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, _, err := project.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Banner Pack", settings.Name)
}

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte("icons:\n  - glyph: Z\n"), 0644))

	settings, icons, err := project.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Untitled Icon Pack", settings.Name)
	assert.Equal(t, "Unknown", settings.Author)
	assert.Equal(t, "breeze", settings.Inherits)
	assert.Equal(t, types.DefaultBaseSizes, settings.BaseSizes)
	assert.Equal(t, "build", settings.OutputDir)
	assert.Equal(t, []string{"gnome", "kde"}, settings.Targets)

	require.Len(t, icons, 1)
	assert.Equal(t, "Icon 1", icons[0].Name)
	assert.Equal(t, "Z", icons[0].Glyph)
	assert.Equal(t, types.DefaultBackground, icons[0].Background)
	assert.Equal(t, types.DefaultForeground, icons[0].Foreground)
}

func TestLoadGlyphFallsBackToName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte("icons:\n  - name: terminal\n"), 0644))

	_, icons, err := project.Load(path)
	require.NoError(t, err)
	require.Len(t, icons, 1)
	assert.Equal(t, "t", icons[0].Glyph)
}

func TestLoadExpandsHomeInSourcePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte("icons:\n  - name: x\n    source_path: ~/icons/x.png\n"), 0644))

	_, icons, err := project.Load(path)
	require.NoError(t, err)
	require.Len(t, icons, 1)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, home+"/icons/x.png", icons[0].SourcePath)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed\n"), 0644))

	_, _, err := project.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDescriptorLoad))
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := project.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDescriptorLoad))
}

func TestSaveSnapshotOmitsStyling(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stromschlag.yaml")
	icons := []types.IconDefinition{
		{Name: "Folder", Glyph: "F", Background: "#123456", Foreground: "#ffffff", Category: "apps"},
	}
	require.NoError(t, project.SaveSnapshot(path, types.PackSettings{Name: "Pack"}, icons))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "glyph")
	assert.NotContains(t, string(data), "background")
	assert.NotContains(t, string(data), "foreground")
	assert.Contains(t, string(data), "category: apps")
}
