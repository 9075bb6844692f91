// Package cli provides the command-line interface for lsext.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rescale/lsext/internal/constants"
	"github.com/rescale/lsext/internal/lister"
	"github.com/rescale/lsext/internal/logging"
	"github.com/rescale/lsext/internal/version"
)

// Program is the name shown in the usage message. Execute sets it from the
// invocation token.
var Program = constants.ProgramName

// flags holds the parsed command-line flags for one command instance.
type flags struct {
	sort          bool
	normalizeExt  bool
	excludeHidden bool
	verbose       bool
	debug         bool
	logFile       string
}

// NewRootCmd creates the lsext command. Output goes to cmd.OutOrStdout and
// diagnostics to cmd.ErrOrStderr, so tests can capture both.
func NewRootCmd(ctx context.Context) *cobra.Command {
	f := &flags{}
	var logger *logging.Logger

	rootCmd := &cobra.Command{
		Use:   constants.ProgramName + " <path> <ext>",
		Short: "List files in a directory that end with an extension",
		Long: `List the direct children of <path> whose names end with "." + <ext>.

Each match is printed as <path>/<name>, one per line. Subdirectories are not
searched. Directories and symlinks are matched by name like regular files.

Examples:
  # C++ sources in src
  lsext src cc

  # Same, sorted by name
  lsext --sort src cc

  # Accept a dotted extension
  lsext --normalize-ext src .cc

Flags must come before <path>; everything after it is positional. Use --
when <path> itself starts with a dash:
  lsext -- -src cc`,
		Version: version.String(),
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := lister.ParseArgs(Program, args)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewLogger(logging.Config{
				Out:     cmd.ErrOrStderr(),
				LogFile: f.logFile,
			})
			if f.verbose || f.debug {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Close()

			inv, err := lister.ParseArgs(Program, args)
			if err != nil {
				return err
			}

			l := lister.New(lister.Options{
				Sort:          f.sort,
				NormalizeExt:  f.normalizeExt,
				ExcludeHidden: f.excludeHidden,
			}, logger)

			err = l.Run(cmd.Context(), inv, cmd.OutOrStdout())
			var fsErr *lister.FilesystemError
			if errors.As(err, &fsErr) {
				logger.Error().Err(fsErr.Err).Str("folder", fsErr.Folder).Msg("Cannot list directory")
			}
			return err
		},
	}

	rootCmd.Flags().BoolVar(&f.sort, "sort", false, "Sort output by name (default: filesystem order)")
	rootCmd.Flags().BoolVar(&f.normalizeExt, "normalize-ext", false, "Strip one leading dot from <ext>")
	rootCmd.Flags().BoolVar(&f.excludeHidden, "exclude-hidden", false, "Skip entries whose names start with a dot")
	rootCmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.Flags().BoolVar(&f.debug, "debug", false, "Enable debug output (same as --verbose)")
	rootCmd.Flags().StringVar(&f.logFile, "log-file", "", "Also write JSON logs to this file (rotated)")

	// Stop flag parsing at the first positional so "lsext src -v" keeps -v as <ext>
	rootCmd.Flags().SetInterspersed(false)

	// Unknown flags are usage errors, same as missing arguments
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &lister.UsageError{Program: Program}
	})

	rootCmd.SetContext(ctx)
	return rootCmd
}

// Run executes the command with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd(ctx)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)

	var usageErr *lister.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(stderr, usageErr.Error())
	} else if err != nil && !isFilesystemError(err) {
		// Filesystem errors are already logged by RunE
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return ExitCode(err)
}

// Execute runs lsext against the process arguments and returns the exit code.
func Execute() int {
	Program = programName(os.Args)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		for sig := range sigChan {
			if sig != nil {
				cancel()
			}
		}
	}()

	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	signal.Stop(sigChan)
	close(sigChan)

	return code
}

// programName returns the invocation token as given, path included.
func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return constants.ProgramName
	}
	return args[0]
}

// ExitCode maps an error returned by the command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return constants.ExitOK
	}

	var usageErr *lister.UsageError
	if errors.As(err, &usageErr) {
		return constants.ExitUsage
	}

	if isFilesystemError(err) {
		return constants.ExitFilesystem
	}

	return constants.ExitFailure
}

func isFilesystemError(err error) bool {
	var fsErr *lister.FilesystemError
	return errors.As(err, &fsErr)
}
