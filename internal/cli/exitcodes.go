package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully
	ExitSuccess = 0

	// ExitError indicates a general error: store failures, unexpected errors
	ExitError = 1

	// ExitUsage indicates incorrect command usage: missing flags, bad
	// flag combinations
	ExitUsage = 2

	// ExitNotFound indicates a requested board, column or card doesn't exist
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data, e.g. a batch file
	// that isn't valid JSON
	ExitDataErr = 4

	// ExitValidation indicates input that fails validation rules, e.g. an
	// empty title or an oversized batch
	ExitValidation = 5
)
