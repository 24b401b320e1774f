package stromschlag

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "A desktop icon theme builder"
	MsgThemesShort  = "List installed icon themes"
	MsgSeedShort    = "Create a new project seeded from an installed theme"
	MsgImportShort  = "Create a project from an existing icon pack directory"
	MsgRenderShort  = "Render glyph tiles for icons without source artwork"
	MsgExportShort  = "Assemble the icon pack for its desktop targets"
	MsgInstallShort = "Assemble and install the icon pack into icon roots"
	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Preview changes without executing them"
	MsgFlagSearchPath = "Additional icon theme root to search (repeatable)"
	MsgFlagTheme      = "Theme to seed icons from (default: first installed preferred theme)"
	MsgFlagLimit      = "Maximum number of icons to seed (0 = unlimited)"
	MsgFlagName       = "Pack name for the new project"
	MsgFlagOut        = "Directory to write rendered tiles into"
	MsgFlagSizes      = "Pixel sizes to render (default: the project's base sizes)"
	MsgFlagVector     = "Render scalable SVG tiles instead of PNG rasters"
	MsgFlagRoot       = "Icon root to install into (repeatable; default: per-user roots)"
	MsgFlagSystem     = "Also install into the system-wide icon roots"

	// Status messages
	MsgNoThemesFound   = "No installed icon themes found."
	MsgInstalledThemes = "Installed icon themes:"
	MsgNeedsSelection  = "no installed theme matched; pass --theme or --search-path"
	MsgDryRunNotice    = "\nDRY RUN MODE - No changes were made"
)

// Long messages
const (
	MsgRootLong = `stromschlag assembles desktop icon themes ("icon packs") from logical
icon names backed by source artwork or synthesized glyph tiles, and
installs them in the directory layout expected by GTK/GNOME and
Qt/KDE icon loaders.`

	MsgSeedLong = `Seed creates a new project file from an installed icon theme. Icons
are collected from the theme's conventional subdirectories (apps,
actions, status, ...) with the first file found for each name winning.`

	MsgImportLong = `Import creates a project file from an already-assembled icon pack
directory. When a name exists in several variants, scalable vector
files under scalable/ and apps/ or mimetypes/ are preferred.`

	MsgRenderLong = `Render synthesizes a glyph tile for every icon in the project that
has no resolvable source artwork, writes it to the output directory
and points the icon's source path at the rendered file. Run it before
export: the assembler itself never synthesizes missing icons.`

	MsgExportLong = `Export assembles the pack under its configured output directory:
one theme tree per desktop target with size buckets, a scalable
bucket, an index.theme control file and round-trippable project
descriptors. Icons without a resolvable source are skipped.`

	MsgInstallLong = `Install assembles the pack and copies each produced target's theme
tree into the candidate icon roots. Failed roots are reported
individually and never abort the remaining installs. Writing to the
system-wide roots requires sufficient privileges; stromschlag never
elevates on its own.`
)
