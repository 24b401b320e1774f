// Package install copies assembled icon packs into live icon theme
// roots. Each (target, root) attempt is independent: one failed root
// never aborts the remaining installs, it is only reported.
package install

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/stromschlag/pkg/errors"
	"github.com/arthur-debert/stromschlag/pkg/fsops"
	"github.com/arthur-debert/stromschlag/pkg/logging"
	"github.com/arthur-debert/stromschlag/pkg/types"
)

// Failure records one install destination that could not be written.
type Failure struct {
	// Path is the destination that failed
	Path string

	// Err is the underlying cause
	Err error
}

// Installer copies assembled packs into icon theme roots.
type Installer struct {
	logger   zerolog.Logger
	executor *fsops.Executor
}

// New creates an Installer backed by the given executor.
func New(executor *fsops.Executor) *Installer {
	return &Installer{
		logger:   logging.GetLogger("install"),
		executor: executor,
	}
}

// DefaultUserRoots returns the per-user icon roots installs default to.
func DefaultUserRoots() []string {
	return []string{
		filepath.Join(xdg.DataHome, "icons"),
		filepath.Join(xdg.Home, ".icons"),
	}
}

// SystemRoots returns the system-wide icon roots. The installer never
// elevates privileges; writing to these requires the caller to run
// with sufficient rights.
func SystemRoots() []string {
	return []string{
		"/usr/share/icons",
		"/usr/local/share/icons",
	}
}

// Install copies every produced target's theme directory into each
// candidate root, merging into <root>/<pack name>. It returns the
// destinations that received a successful copy, in target-then-root
// order, and the failures. It never returns an error: individual
// failures are collected, not raised.
func (i *Installer) Install(result types.ExportResult, roots []string) (installed []string, failures []Failure) {
	for _, target := range types.KnownTargets {
		source := filepath.Join(result.PackRoot, target, result.PackName)
		if info, err := os.Stat(source); err != nil || !info.IsDir() {
			continue
		}

		for _, root := range roots {
			dest := filepath.Join(root, result.PackName)
			if err := i.copyTree(source, dest); err != nil {
				i.logger.Warn().
					Err(err).
					Str("target", target).
					Str("dest", dest).
					Msg("Install attempt failed")
				failures = append(failures, Failure{Path: dest, Err: err})
				continue
			}
			i.logger.Info().
				Str("target", target).
				Str("dest", dest).
				Msg("Installed icon pack")
			installed = append(installed, dest)
		}
	}
	return installed, failures
}

// copyTree replicates the source directory tree at dest, overwriting
// files that already exist and leaving unrelated files in place.
func (i *Installer) copyTree(source, dest string) error {
	var ops []fsops.Operation

	err := filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}

		if d.IsDir() {
			ops = append(ops, fsops.CreateDir(filepath.Join(dest, rel)))
			return nil
		}
		ops = append(ops, fsops.CopyFile(path, filepath.Join(dest, rel)))
		return nil
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInstallFailed,
			"cannot read pack directory").WithDetail("source", source)
	}

	if err := i.executor.Execute(ops); err != nil {
		return errors.Wrap(err, errors.ErrInstallFailed,
			"cannot copy pack into install root").WithDetail("dest", dest)
	}
	return nil
}
