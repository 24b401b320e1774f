// pkg/install/installer_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Temp filesystem
// PURPOSE: Test pack installation into icon roots with partial failures

package install_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/stromschlag/pkg/export"
	"github.com/arthur-debert/stromschlag/pkg/fsops"
	"github.com/arthur-debert/stromschlag/pkg/install"
	"github.com/arthur-debert/stromschlag/pkg/types"
)

// assemblePack builds a single-target pack to install in tests.
func assemblePack(t *testing.T) types.ExportResult {
	t.Helper()

	source := filepath.Join(t.TempDir(), "folder.png")
	require.NoError(t, os.WriteFile(source, []byte("png-bytes"), 0644))

	settings := types.PackSettings{
		Name:      "My Pack",
		Author:    "Tester",
		BaseSizes: []int{32},
		OutputDir: filepath.Join(t.TempDir(), "build"),
		Targets:   []string{"kde"},
	}

	assembler := export.New(fsops.NewExecutor(false))
	result, err := assembler.Assemble(settings, []types.IconDefinition{{Name: "folder", SourcePath: source}})
	require.NoError(t, err)
	return result
}

func TestInstall(t *testing.T) {
	result := assemblePack(t)
	root := filepath.Join(t.TempDir(), "icons")

	installer := install.New(fsops.NewExecutor(false))
	installed, failures := installer.Install(result, []string{root})

	assert.Empty(t, failures)
	require.Equal(t, []string{filepath.Join(root, "My Pack")}, installed)

	copied, err := os.ReadFile(filepath.Join(root, "My Pack", "32x32", "apps", "folder.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(copied))

	_, err = os.Stat(filepath.Join(root, "My Pack", "index.theme"))
	assert.NoError(t, err)
}

func TestInstallMultipleRoots(t *testing.T) {
	result := assemblePack(t)
	first := filepath.Join(t.TempDir(), "icons-a")
	second := filepath.Join(t.TempDir(), "icons-b")

	installer := install.New(fsops.NewExecutor(false))
	installed, failures := installer.Install(result, []string{first, second})

	assert.Empty(t, failures)
	assert.Equal(t, []string{
		filepath.Join(first, "My Pack"),
		filepath.Join(second, "My Pack"),
	}, installed)
}

func TestInstallRecordsFailureAndContinues(t *testing.T) {
	result := assemblePack(t)

	// A root that is a regular file cannot receive a directory tree
	badRoot := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(badRoot, []byte("x"), 0644))
	goodRoot := filepath.Join(t.TempDir(), "icons")

	installer := install.New(fsops.NewExecutor(false))
	installed, failures := installer.Install(result, []string{badRoot, goodRoot})

	require.Len(t, failures, 1)
	assert.Equal(t, filepath.Join(badRoot, "My Pack"), failures[0].Path)
	assert.Error(t, failures[0].Err)

	require.Len(t, installed, 1)
	assert.Equal(t, filepath.Join(goodRoot, "My Pack"), installed[0])
}

func TestInstallSkipsAbsentTargets(t *testing.T) {
	result := assemblePack(t) // kde only
	root := filepath.Join(t.TempDir(), "icons")

	installer := install.New(fsops.NewExecutor(false))
	installed, failures := installer.Install(result, []string{root})

	assert.Empty(t, failures)
	assert.Len(t, installed, 1, "only the produced target installs")
}

func TestInstallRelativeRoot(t *testing.T) {
	result := assemblePack(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	installer := install.New(fsops.NewExecutor(false))
	installed, failures := installer.Install(result, []string{"icons"})

	assert.Empty(t, failures)
	require.Equal(t, []string{filepath.Join("icons", "My Pack")}, installed)

	copied, err := os.ReadFile(filepath.Join("icons", "My Pack", "32x32", "apps", "folder.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(copied))
}

func TestInstallNothingProduced(t *testing.T) {
	installer := install.New(fsops.NewExecutor(false))
	installed, failures := installer.Install(types.ExportResult{
		PackRoot: t.TempDir(),
		PackName: "Ghost Pack",
	}, []string{filepath.Join(t.TempDir(), "icons")})

	assert.Empty(t, installed)
	assert.Empty(t, failures)
}
