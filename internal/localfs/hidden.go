// Package localfs enumerates local directories for lsext.
// Listing is shallow: only the direct children of a directory are returned.
package localfs

import "strings"

// IsHiddenName reports whether name (not a path) is a dot file.
// Special entries "." and ".." are not considered hidden.
func IsHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}
