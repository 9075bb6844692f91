package localfs

// ListOptions configures the behavior of ListDirectory.
type ListOptions struct {
	// IncludeHidden includes entries whose names start with a dot.
	IncludeHidden bool

	// Sorted orders entries by name. When false, entries come back in the
	// order the filesystem yields them.
	Sorted bool
}
