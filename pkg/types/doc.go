// Package types defines the core types used throughout stromschlag:
// IconDefinition, PackSettings, ThemeCandidate and ExportResult, plus
// the fixed table of desktop targets a pack can be assembled for.
package types
