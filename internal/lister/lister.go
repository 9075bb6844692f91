// Package lister prints the direct children of a folder whose names end
// with "." + extension.
package lister

import (
	"context"
	"fmt"
	"io"

	"github.com/rescale/lsext/internal/constants"
	"github.com/rescale/lsext/internal/localfs"
	"github.com/rescale/lsext/internal/logging"
	"github.com/rescale/lsext/internal/util/filter"
)

// Invocation holds the validated positional arguments.
type Invocation struct {
	Folder string
	Ext    string
}

// Options adjusts listing behavior. The zero value lists every direct child,
// hidden ones included, in filesystem order, using Ext literally.
type Options struct {
	Sort          bool // order output by entry name
	NormalizeExt  bool // strip one leading dot from Ext
	ExcludeHidden bool // skip dot-prefixed names
}

// ParseArgs validates the positional arguments (the program token excluded).
// Arguments past the second are ignored.
func ParseArgs(program string, args []string) (Invocation, error) {
	if len(args) < constants.RequiredArgs {
		return Invocation{}, &UsageError{Program: program}
	}
	return Invocation{Folder: args[0], Ext: args[1]}, nil
}

// Lister enumerates a folder and filters it by extension.
type Lister struct {
	opts   Options
	logger *logging.Logger
}

// New creates a Lister. A nil logger falls back to the default CLI logger.
func New(opts Options, logger *logging.Logger) *Lister {
	if logger == nil {
		logger = logging.NewDefaultCLILogger()
	}
	return &Lister{opts: opts, logger: logger}
}

// List returns the output lines for inv, formatted "<folder>/<name>".
// On enumeration failure it returns a *FilesystemError and no lines.
func (l *Lister) List(ctx context.Context, inv Invocation) ([]string, error) {
	cfg := filter.Config{Extension: inv.Ext, Normalize: l.opts.NormalizeExt}

	l.logger.Debug().
		Str("folder", inv.Folder).
		Str("suffix", cfg.Suffix()).
		Bool("sorted", l.opts.Sort).
		Msg("Listing directory")

	entries, err := localfs.ListDirectory(ctx, inv.Folder, localfs.ListOptions{
		IncludeHidden: !l.opts.ExcludeHidden,
		Sorted:        l.opts.Sort,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &FilesystemError{Folder: inv.Folder, Err: err}
	}

	matched := filter.ApplyToEntries(entries, cfg)
	l.logger.Debugf("%d of %d entries matched", len(matched), len(entries))

	lines := make([]string, 0, len(matched))
	for _, entry := range matched {
		l.logger.Debug().Str("name", entry.Name).Bool("dir", entry.IsDir).Msg("Matched")
		lines = append(lines, inv.Folder+constants.PathSeparator+entry.Name)
	}
	return lines, nil
}

// Run lists inv and writes one line per match to w.
// Nothing is written unless enumeration succeeded; once writing starts,
// every line is written.
func (l *Lister) Run(ctx context.Context, inv Invocation, w io.Writer) error {
	lines, err := l.List(ctx, inv)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
