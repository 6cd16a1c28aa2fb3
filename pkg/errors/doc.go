// Package errors provides the error types and display helpers for playrefine.
//
// This package consolidates error handling into a single location:
//   - ExitError: Command exit with specific exit code
//   - NoStraightsError: The straights input held no 5-digit sequences
//   - NoWinnersError: The winners input held no 5-digit sequences
//   - SourceReadError: A winners, exclude or straights source could not be read
//
// Error Display:
//
// The package provides consistent error formatting with actionable hints:
//
//	errors.PrintErrorWithHints(os.Stderr, errs, verbose)
//
// Error Checking:
//
// Use the Is* functions to check error types:
//
//	if exitErr, ok := errors.IsExitError(err); ok {
//	    os.Exit(exitErr.Code)
//	}
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): A non-empty play list was produced
//   - ExitNoResult (1): Filtering succeeded but no straights remained
//   - ExitFailure (2): Unexpected failure (I/O while writing output, ...)
//   - ExitConfigError (3): Configuration or validation error
//   - ExitInputError (4): Straights or winners missing, or a source was unreadable
package errors
