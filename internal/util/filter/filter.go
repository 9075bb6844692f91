// Package filter decides which directory entries match an extension.
// Matching is a literal, case-sensitive suffix comparison on the entry name.
package filter

import (
	"strings"

	"github.com/rescale/lsext/internal/localfs"
)

// Config holds filter configuration.
type Config struct {
	// Extension is the token after the dot, e.g. "cc".
	// It is used as given: ".cc" produces the suffix "..cc".
	Extension string

	// Normalize strips one leading dot from Extension before matching.
	Normalize bool
}

// Suffix returns the string a name must end with to match.
func (c Config) Suffix() string {
	ext := c.Extension
	if c.Normalize {
		ext = NormalizeExtension(ext)
	}
	return "." + ext
}

// MatchesExtension reports whether name ends with the configured suffix.
func MatchesExtension(name string, config Config) bool {
	return strings.HasSuffix(name, config.Suffix())
}

// ApplyToEntries returns the entries whose names match, preserving order.
// Directories and files are treated alike.
func ApplyToEntries(entries []localfs.FileEntry, config Config) []localfs.FileEntry {
	filtered := make([]localfs.FileEntry, 0, len(entries))
	for _, entry := range entries {
		if MatchesExtension(entry.Name, config) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// NormalizeExtension removes a single leading dot.
// Example: ".cc" -> "cc", "..cc" -> ".cc", "cc" -> "cc"
func NormalizeExtension(ext string) string {
	return strings.TrimPrefix(ext, ".")
}
