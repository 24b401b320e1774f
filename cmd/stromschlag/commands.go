package stromschlag

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/stromschlag/pkg/catalog"
	"github.com/arthur-debert/stromschlag/pkg/config"
	"github.com/arthur-debert/stromschlag/pkg/errors"
	"github.com/arthur-debert/stromschlag/pkg/export"
	"github.com/arthur-debert/stromschlag/pkg/fsops"
	"github.com/arthur-debert/stromschlag/pkg/install"
	"github.com/arthur-debert/stromschlag/pkg/project"
	"github.com/arthur-debert/stromschlag/pkg/render"
	"github.com/arthur-debert/stromschlag/pkg/themes"
	"github.com/arthur-debert/stromschlag/pkg/types"
	"github.com/arthur-debert/stromschlag/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// loadConfig reads the layered configuration and shows a warning when
// the user file is broken instead of aborting the command.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config at %s: %v\n", config.UserConfigPath(), err)
		return &config.Config{}
	}
	return cfg
}

func newThemesCmd() *cobra.Command {
	var searchPaths []string

	cmd := &cobra.Command{
		Use:   "themes",
		Short: MsgThemesShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			extra := append(cfg.Seed.ExtraSearchPaths, searchPaths...)

			candidates := themes.ListInstalled(extra)
			if len(candidates) == 0 {
				fmt.Println(MsgNoThemesFound)
				return nil
			}

			fmt.Println(formatBold(MsgInstalledThemes))
			for _, c := range candidates {
				fmt.Printf("  %-24s %s\n", c.Name, c.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&searchPaths, "search-path", nil, MsgFlagSearchPath)

	return cmd
}

func newSeedCmd() *cobra.Command {
	var (
		theme       string
		limit       int
		name        string
		searchPaths []string
	)

	cmd := &cobra.Command{
		Use:   "seed <project.yaml>",
		Short: MsgSeedShort,
		Long:  MsgSeedLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			extra := append(cfg.Seed.ExtraSearchPaths, searchPaths...)

			preferred := cfg.Seed.PreferredThemes
			if len(preferred) == 0 {
				preferred = themes.PreferredThemes
			}
			if theme != "" {
				preferred = []string{theme}
			}

			log.Info().
				Strs("preferred", preferred).
				Int("limit", limit).
				Msg("Seeding project from installed theme")

			result := themes.LoadBlueprint(preferred, limit, extra)
			if result.NeedsSelection {
				return errors.New(errors.ErrThemeNotFound, MsgNeedsSelection)
			}

			settings := types.PackSettings{
				Name:      name,
				Author:    cfg.Pack.DefaultAuthor,
				Inherits:  cfg.Pack.DefaultInherits,
				BaseSizes: cfg.Pack.DefaultSizes,
				OutputDir: cfg.Pack.DefaultOutputDir,
			}
			if settings.Name == "" {
				settings.Name = "Untitled Icon Pack"
			}
			if settings.Author == "" {
				settings.Author = "Unknown"
			}

			if err := project.Save(args[0], settings, result.Icons); err != nil {
				return err
			}

			fmt.Printf("Seeded %d icons from %s into %s\n",
				len(result.Icons), result.SourceTheme, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", MsgFlagTheme)
	cmd.Flags().IntVar(&limit, "limit", 0, MsgFlagLimit)
	cmd.Flags().StringVar(&name, "name", "", MsgFlagName)
	cmd.Flags().StringArrayVar(&searchPaths, "search-path", nil, MsgFlagSearchPath)

	return cmd
}

func newImportCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <pack-dir> <project.yaml>",
		Short: MsgImportShort,
		Long:  MsgImportLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			packDir, projectPath := args[0], args[1]

			info, err := os.Stat(packDir)
			if err != nil || !info.IsDir() {
				return errors.Newf(errors.ErrNotFound, "not a directory: %s", packDir)
			}

			entries := catalog.CollectWeighted(packDir)

			log.Info().
				Str("dir", packDir).
				Int("icons", len(entries)).
				Msg("Imported icons from pack directory")

			abs, err := filepath.Abs(packDir)
			if err != nil {
				abs = packDir
			}

			settings := types.PackSettings{
				Name:      name,
				Author:    "Imported",
				Inherits:  "hicolor",
				OutputDir: filepath.Dir(abs),
			}
			if settings.Name == "" {
				settings.Name = filepath.Base(abs)
			}

			if err := project.Save(projectPath, settings, catalog.ToIconDefinitions(entries)); err != nil {
				return err
			}

			fmt.Printf("Imported %d icons from %s into %s\n",
				len(entries), packDir, projectPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", MsgFlagName)

	return cmd
}

func newRenderCmd() *cobra.Command {
	var (
		out    string
		sizes  []int
		vector bool
	)

	cmd := &cobra.Command{
		Use:   "render <project.yaml>",
		Short: MsgRenderShort,
		Long:  MsgRenderLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, icons, err := project.Load(args[0])
			if err != nil {
				return err
			}

			outDir := out
			if outDir == "" {
				outDir = filepath.Join(filepath.Dir(args[0]), "rendered")
			}

			renderSizes := sizes
			if len(renderSizes) == 0 {
				renderSizes = settings.Normalized().BaseSizes
			}
			// The largest size is the one referenced as source artwork
			nominal := renderSizes[0]
			for _, s := range renderSizes[1:] {
				if s > nominal {
					nominal = s
				}
			}

			rendered := 0
			for i, icon := range icons {
				if icon.HasSourceAsset() {
					continue
				}

				var path string
				if vector {
					path = filepath.Join(outDir, strings.TrimSuffix(utils.IconFileName(icon.Name), ".png")+".svg")
					data, err := render.SVG(icon, nominal)
					if err != nil {
						return err
					}
					if err := os.MkdirAll(outDir, 0755); err != nil {
						return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", outDir)
					}
					if err := os.WriteFile(path, data, 0644); err != nil {
						return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
					}
				} else {
					path = filepath.Join(outDir, utils.IconFileName(icon.Name))
					img, err := render.Raster(icon, nominal)
					if err != nil {
						return err
					}
					if err := render.WritePNG(img, path); err != nil {
						return err
					}
				}

				icons[i].SourcePath = path
				rendered++
			}

			if rendered > 0 {
				if err := project.Save(args[0], settings, icons); err != nil {
					return err
				}
			}

			fmt.Printf("Rendered %d glyph tiles into %s\n", rendered, outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", MsgFlagOut)
	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, MsgFlagSizes)
	cmd.Flags().BoolVar(&vector, "vector", false, MsgFlagVector)

	return cmd
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <project.yaml>",
		Short: MsgExportShort,
		Long:  MsgExportLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, icons, err := project.Load(args[0])
			if err != nil {
				return err
			}

			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			assembler := export.New(fsops.NewExecutor(dryRun))
			result, err := assembler.Assemble(settings, icons)
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Println(MsgDryRunNotice)
			}

			fmt.Printf("Assembled %s\n", formatBold(result.PackRoot))
			for _, target := range result.Targets {
				fmt.Printf("  %s\n", filepath.Join(result.PackRoot, target, result.PackName))
			}
			return nil
		},
	}
}

func newInstallCmd() *cobra.Command {
	var (
		roots  []string
		system bool
	)

	cmd := &cobra.Command{
		Use:   "install <project.yaml>",
		Short: MsgInstallShort,
		Long:  MsgInstallLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, icons, err := project.Load(args[0])
			if err != nil {
				return err
			}

			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			executor := fsops.NewExecutor(dryRun)

			assembler := export.New(executor)
			result, err := assembler.Assemble(settings, icons)
			if err != nil {
				return err
			}

			targets := roots
			if len(targets) == 0 {
				targets = install.DefaultUserRoots()
			}
			if system {
				targets = append(targets, install.SystemRoots()...)
			}

			installer := install.New(executor)
			installed, failures := installer.Install(result, targets)

			if dryRun {
				fmt.Println(MsgDryRunNotice)
			}

			for _, path := range installed {
				fmt.Printf("Installed %s\n", path)
			}
			for _, f := range failures {
				fmt.Fprintf(os.Stderr, "Failed %s: %v\n", f.Path, f.Err)
			}

			if len(installed) == 0 && len(failures) > 0 {
				return errors.New(errors.ErrInstallFailed, "no icon root could be written")
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&roots, "root", nil, MsgFlagRoot)
	cmd.Flags().BoolVar(&system, "system", false, MsgFlagSystem)

	return cmd
}
