// Package export assembles icon packs: the per-target directory
// trees, the index.theme control files, the copied assets and the
// project descriptors that make an exported pack round-trippable.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/stromschlag/pkg/catalog"
	"github.com/arthur-debert/stromschlag/pkg/errors"
	"github.com/arthur-debert/stromschlag/pkg/fsops"
	"github.com/arthur-debert/stromschlag/pkg/logging"
	"github.com/arthur-debert/stromschlag/pkg/project"
	"github.com/arthur-debert/stromschlag/pkg/types"
	"github.com/arthur-debert/stromschlag/pkg/utils"
)

// scalableNominalSize is the Size value written for the scalable
// bucket's index.theme section, regardless of actual content.
const scalableNominalSize = 128

// themeTarget tracks one desktop target's directories during assembly.
type themeTarget struct {
	name        string
	themeRoot   string
	sizeDirs    map[int]string
	scalableDir string
	directories []string // relative, in creation order, for index.theme
}

// Assembler builds icon packs through a filesystem operation executor.
type Assembler struct {
	logger   zerolog.Logger
	executor *fsops.Executor
}

// New creates an Assembler backed by the given executor.
func New(executor *fsops.Executor) *Assembler {
	return &Assembler{
		logger:   logging.GetLogger("export"),
		executor: executor,
	}
}

// Assemble exports the icons for the configured desktop targets and
// returns the pack root. An empty icon list fails with EMPTY_ICON_SET
// before anything is written; re-running against the same output
// directory overwrites existing files, never deletes.
//
// Icons without a resolvable source asset are skipped during the copy
// phase. Rendering a glyph for them is the caller's job, done before
// export (see pkg/render).
func (a *Assembler) Assemble(settings types.PackSettings, icons []types.IconDefinition) (types.ExportResult, error) {
	if len(icons) == 0 {
		return types.ExportResult{}, errors.New(errors.ErrEmptyIconSet,
			"no icons provided for export")
	}

	normalized := settings.Normalized()
	packRoot := filepath.Join(normalized.OutputDir, normalized.ThemeSlug())

	a.logger.Info().
		Str("packRoot", packRoot).
		Strs("targets", normalized.Targets).
		Int("icons", len(icons)).
		Msg("Assembling icon pack")

	targets := make([]themeTarget, 0, len(normalized.Targets))
	var ops []fsops.Operation
	for _, name := range normalized.Targets {
		target := newThemeTarget(name, packRoot, normalized)
		targets = append(targets, target)
		ops = append(ops, target.createOps(normalized)...)
	}

	ops = append(ops, a.copyOps(icons, targets)...)

	if err := a.executor.Execute(ops); err != nil {
		return types.ExportResult{}, errors.Wrap(err, errors.ErrFileWrite,
			"pack assembly failed").WithDetail("packRoot", packRoot)
	}

	if !a.executor.DryRun() {
		if err := a.writeDescriptors(packRoot, targets, normalized, icons); err != nil {
			return types.ExportResult{}, err
		}
	}

	return types.ExportResult{
		PackRoot: packRoot,
		PackName: normalized.Name,
		Targets:  normalized.Targets,
	}, nil
}

// newThemeTarget computes one target's directory layout.
func newThemeTarget(name, packRoot string, settings types.PackSettings) themeTarget {
	themeRoot := filepath.Join(packRoot, name, settings.Name)

	target := themeTarget{
		name:      name,
		themeRoot: themeRoot,
		sizeDirs:  make(map[int]string, len(settings.BaseSizes)),
	}
	for _, size := range settings.BaseSizes {
		rel := fmt.Sprintf("%dx%d/apps", size, size)
		target.sizeDirs[size] = filepath.Join(themeRoot, filepath.FromSlash(rel))
		target.directories = append(target.directories, rel)
	}
	target.scalableDir = filepath.Join(themeRoot, "scalable", "apps")
	target.directories = append(target.directories, "scalable/apps")
	return target
}

// createOps returns the directory and index.theme operations for the
// target.
func (t themeTarget) createOps(settings types.PackSettings) []fsops.Operation {
	ops := make([]fsops.Operation, 0, len(settings.BaseSizes)+2)
	for _, size := range settings.BaseSizes {
		ops = append(ops, fsops.CreateDir(t.sizeDirs[size]))
	}
	ops = append(ops, fsops.CreateDir(t.scalableDir))
	ops = append(ops, fsops.WriteFile(
		filepath.Join(t.themeRoot, "index.theme"),
		[]byte(indexTheme(settings, t.directories)),
	))
	return ops
}

// copyOps returns the asset copy operations for every icon that has a
// resolvable source. Vector sources go into the scalable bucket only;
// raster sources are replicated verbatim into every size bucket and
// the scalable bucket. No resampling happens here.
func (a *Assembler) copyOps(icons []types.IconDefinition, targets []themeTarget) []fsops.Operation {
	var ops []fsops.Operation
	for _, icon := range icons {
		if !icon.HasSourceAsset() {
			a.logger.Debug().Str("icon", icon.Name).Msg("Skipping icon without source asset")
			continue
		}

		filename := utils.IconFileName(icon.Name)
		vector := catalog.IsVectorPath(icon.SourcePath)

		for _, target := range targets {
			if !vector {
				for _, size := range bucketSizes(target) {
					ops = append(ops, fsops.CopyFile(icon.SourcePath,
						filepath.Join(target.sizeDirs[size], filename)))
				}
			}
			ops = append(ops, fsops.CopyFile(icon.SourcePath,
				filepath.Join(target.scalableDir, filename)))
		}
	}
	return ops
}

// writeDescriptors drops the round-trippable project descriptors: one
// at the pack root carrying the original source paths, one inside each
// target root with source paths rewritten to the copied files.
func (a *Assembler) writeDescriptors(packRoot string, targets []themeTarget, settings types.PackSettings, icons []types.IconDefinition) error {
	if err := project.SaveSnapshot(filepath.Join(packRoot, project.DescriptorName), settings, icons); err != nil {
		return err
	}

	for _, target := range targets {
		themed := make([]types.IconDefinition, 0, len(icons))
		for _, icon := range icons {
			rewritten := icon
			if icon.HasSourceAsset() {
				rewritten.SourcePath = filepath.Join(target.scalableDir, utils.IconFileName(icon.Name))
			} else {
				rewritten.SourcePath = ""
			}
			themed = append(themed, rewritten)
		}
		if err := project.SaveSnapshot(filepath.Join(target.themeRoot, project.DescriptorName), settings, themed); err != nil {
			return err
		}
	}
	return nil
}

// indexTheme renders the index.theme control file: the [Icon Theme]
// header plus one section per created directory. Size buckets are
// Fixed; the scalable bucket always advertises the nominal size.
func indexTheme(settings types.PackSettings, directories []string) string {
	var b strings.Builder
	b.WriteString("[Icon Theme]\n")
	fmt.Fprintf(&b, "Name=%s\n", settings.Name)
	fmt.Fprintf(&b, "Comment=%s\n", settings.ThemeComment())
	fmt.Fprintf(&b, "Inherits=%s\n", settings.Inherits)
	fmt.Fprintf(&b, "Directories=%s\n\n", strings.Join(directories, ","))

	for _, directory := range directories {
		fmt.Fprintf(&b, "[%s]\n", directory)
		sizePart := strings.SplitN(directory, "/", 2)[0]
		if idx := strings.Index(sizePart, "x"); idx > 0 {
			fmt.Fprintf(&b, "Size=%s\n", sizePart[:idx])
			b.WriteString("Type=Fixed\n\n")
		} else {
			fmt.Fprintf(&b, "Size=%d\n", scalableNominalSize)
			b.WriteString("Type=Scalable\n\n")
		}
	}
	return b.String()
}

// bucketSizes returns the target's bucket sizes in creation order.
func bucketSizes(t themeTarget) []int {
	sizes := make([]int, 0, len(t.sizeDirs))
	for _, rel := range t.directories {
		if rel == "scalable/apps" {
			continue
		}
		var size int
		fmt.Sscanf(rel, "%dx", &size)
		sizes = append(sizes, size)
	}
	return sizes
}
