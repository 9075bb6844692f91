package localfs

import (
	"context"
	"os"
	"sort"
)

// FileEntry is a direct child of a listed directory.
type FileEntry struct {
	Name  string // base name as stored in the directory
	IsDir bool   // true for directories (symlinks are not followed)
}

// ListDirectory returns the direct children of path.
//
// Entries are not stat'ed, so names that cannot be stat'ed are still listed.
// Nothing is returned if the directory cannot be opened or read in full.
func ListDirectory(ctx context.Context, path string, opts ListOptions) ([]FileEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	// File.ReadDir keeps directory order, unlike os.ReadDir which sorts.
	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, err
	}

	result := make([]FileEntry, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		if !opts.IncludeHidden && IsHiddenName(name) {
			continue
		}

		result = append(result, FileEntry{
			Name:  name,
			IsDir: entry.IsDir(),
		})
	}

	if opts.Sorted {
		sort.Slice(result, func(i, j int) bool {
			return result[i].Name < result[j].Name
		})
	}

	return result, nil
}
