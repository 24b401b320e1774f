package types

// ThemeCandidate represents an installed icon theme directory that can
// seed a new project. Identity is the resolved absolute path; the
// registry deduplicates candidates reachable via multiple search roots.
type ThemeCandidate struct {
	// Name is the theme directory name
	Name string

	// Path is the path to the theme root
	Path string
}

// ExportResult is the output of assembling a pack. It is produced once
// per export call and immutable afterward.
type ExportResult struct {
	// PackRoot is the root directory the pack was assembled under
	PackRoot string

	// PackName is the pack display name, used as the theme directory
	// name inside each target and each install root
	PackName string

	// Targets are the desktop targets that were actually produced, in
	// assembly order
	Targets []string
}
