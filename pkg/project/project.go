// Package project reads and writes stromschlag project descriptors.
// A descriptor is a YAML document holding the pack settings and icon
// list; the same loader reads hand-authored project files and the
// descriptors the assembler drops into exported packs.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/stromschlag/pkg/errors"
	"github.com/arthur-debert/stromschlag/pkg/logging"
	"github.com/arthur-debert/stromschlag/pkg/types"
	"github.com/arthur-debert/stromschlag/pkg/utils"
)

// DescriptorName is the descriptor filename written at pack roots.
const DescriptorName = "stromschlag.yaml"

// banner is the comment line written ahead of every saved descriptor.
// Loaders must tolerate it; the YAML parser skips comments natively.
const banner = "# Stromschlag icon pack project. See https://github.com/arthur-debert/stromschlag\n"

// document mirrors the descriptor's top-level YAML layout. Field order
// here fixes the key order in saved files.
type document struct {
	Name        string     `yaml:"name"`
	Author      string     `yaml:"author"`
	Description string     `yaml:"description"`
	Inherits    string     `yaml:"inherits"`
	BaseSizes   []int      `yaml:"base_sizes"`
	OutputDir   string     `yaml:"output_dir"`
	Targets     []string   `yaml:"targets"`
	Icons       []iconNode `yaml:"icons"`
}

type iconNode struct {
	Name       string `yaml:"name"`
	Glyph      string `yaml:"glyph,omitempty"`
	Background string `yaml:"background,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Category   string `yaml:"category,omitempty"`
	SourcePath string `yaml:"source_path,omitempty"`
}

// Load reads a project descriptor and returns its settings and icons.
// Missing keys get the stock defaults; a malformed or unreadable file
// yields a DESCRIPTOR_LOAD error and no partial state.
func Load(path string) (types.PackSettings, []types.IconDefinition, error) {
	logger := logging.GetLogger("project")

	data, err := os.ReadFile(path)
	if err != nil {
		return types.PackSettings{}, nil, errors.Wrap(err, errors.ErrDescriptorLoad,
			"cannot read project file").WithDetail("path", path)
	}

	// Defaults apply only where the document stays silent; unmarshal
	// overwrites every key the document carries.
	doc := document{
		Name:      "Untitled Icon Pack",
		Author:    "Unknown",
		Inherits:  types.DefaultInherits,
		BaseSizes: append([]int(nil), types.DefaultBaseSizes...),
		OutputDir: types.DefaultOutputDir,
		Targets:   append([]string(nil), types.KnownTargets...),
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return types.PackSettings{}, nil, errors.Wrap(err, errors.ErrDescriptorLoad,
			"malformed project file").WithDetail("path", path)
	}

	settings := types.PackSettings{
		Name:        doc.Name,
		Author:      doc.Author,
		Description: doc.Description,
		Inherits:    doc.Inherits,
		BaseSizes:   doc.BaseSizes,
		OutputDir:   doc.OutputDir,
		Targets:     doc.Targets,
	}

	icons := make([]types.IconDefinition, 0, len(doc.Icons))
	for i, node := range doc.Icons {
		name := node.Name
		if name == "" {
			name = fmt.Sprintf("Icon %d", i+1)
		}

		sourcePath := node.SourcePath
		if sourcePath != "" {
			if expanded, err := utils.ExpandHome(sourcePath); err == nil {
				sourcePath = expanded
			}
		}

		icon := types.IconDefinition{
			Name:       name,
			Glyph:      node.Glyph,
			Background: node.Background,
			Foreground: node.Foreground,
			SourcePath: sourcePath,
			Category:   node.Category,
		}
		if icon.Background == "" {
			icon.Background = types.DefaultBackground
		}
		if icon.Foreground == "" {
			icon.Foreground = types.DefaultForeground
		}
		icon.Glyph = icon.ResolvedGlyph()
		icons = append(icons, icon)
	}

	logger.Debug().Str("path", path).Int("icons", len(icons)).Msg("Loaded project")
	return settings, icons, nil
}

// Save persists a full project descriptor, including per-icon glyph
// and color styling.
func Save(path string, settings types.PackSettings, icons []types.IconDefinition) error {
	return save(path, settings, icons, true)
}

// SaveSnapshot persists a pack descriptor: the same settings but icons
// reduced to name/category/source_path. Styling state is app-local and
// not part of an exported pack.
func SaveSnapshot(path string, settings types.PackSettings, icons []types.IconDefinition) error {
	return save(path, settings, icons, false)
}

func save(path string, settings types.PackSettings, icons []types.IconDefinition, includeStyling bool) error {
	doc := document{
		Name:        settings.Name,
		Author:      settings.Author,
		Description: settings.Description,
		Inherits:    settings.Inherits,
		BaseSizes:   settings.BaseSizes,
		OutputDir:   settings.OutputDir,
		Targets:     settings.Targets,
	}

	for _, icon := range icons {
		node := iconNode{
			Name:       icon.Name,
			Category:   icon.Category,
			SourcePath: icon.SourcePath,
		}
		if includeStyling {
			node.Glyph = icon.Glyph
			node.Background = icon.Background
			node.Foreground = icon.Foreground
		}
		doc.Icons = append(doc.Icons, node)
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrDescriptorSave,
			"cannot marshal project").WithDetail("path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate,
			"cannot create project directory").WithDetail("path", path)
	}
	if err := os.WriteFile(path, append([]byte(banner), data...), 0644); err != nil {
		return errors.Wrap(err, errors.ErrDescriptorSave,
			"cannot write project file").WithDetail("path", path)
	}
	return nil
}
