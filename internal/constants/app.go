package constants

// Program identity
const (
	// ProgramName is the binary name used in help text and as the usage
	// fallback when the invocation token is unavailable.
	ProgramName = "lsext"

	// UsageFormat renders the usage message. Both verbs take the program name.
	UsageFormat = "use: %s <path> <ext>. e.g.:%s src cc"

	// RequiredArgs is the number of positional arguments: folder and extension.
	RequiredArgs = 2

	// PathSeparator joins folder and entry name in output lines. It is always
	// a forward slash, regardless of platform.
	PathSeparator = "/"
)

// Exit codes
const (
	// ExitOK - normal completion, including when nothing matched
	ExitOK = 0

	// ExitUsage - required arguments missing or flags could not be parsed
	ExitUsage = 1

	// ExitFilesystem - the directory could not be enumerated
	ExitFilesystem = 2

	// ExitFailure - any other failure (write error, interrupted)
	ExitFailure = 3
)

// Logging
const (
	// LogTimeFormat - console timestamp layout
	LogTimeFormat = "15:04:05"

	// LogFileMaxSizeMB - rotate the --log-file after this many megabytes
	LogFileMaxSizeMB = 10

	// LogFileMaxBackups - rotated log files to keep
	LogFileMaxBackups = 5

	// LogFileMaxAgeDays - days to keep rotated log files
	LogFileMaxAgeDays = 30
)
