package errors

import (
	"fmt"
	"io"
)

// PrintErrorWithHints prints errors with actionable hints to the writer.
//
// This is the single implementation for error display across all commands.
// Silent exit errors are skipped; their command already reported them.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - errs: Slice of errors to display
//   - verbose: If true, source read errors include the underlying cause chain
//
// Output format:
//
//	Error: <error message>
//	  Hint: <actionable hint if available>
func PrintErrorWithHints(w io.Writer, errs []error, verbose bool) {
	for _, err := range errs {
		printSingleError(w, err, verbose)
	}
}

// printSingleError prints a single error with appropriate formatting.
//
// Parameters:
//   - w: Writer to output to
//   - err: The error to print
//   - verbose: If true, includes detailed information
func printSingleError(w io.Writer, err error, verbose bool) {
	if err == nil {
		return
	}

	if exitErr, ok := IsExitError(err); ok && exitErr.Silent {
		return
	}

	if sre, ok := IsSourceRead(err); ok {
		printSourceReadError(w, sre, verbose)
		return
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", EnhanceErrorWithHint(err))
}

// printSourceReadError prints a source read failure.
//
// In verbose mode the role and source are printed on their own lines.
func printSourceReadError(w io.Writer, err *SourceReadError, verbose bool) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", EnhanceErrorWithHint(err))
	if verbose {
		_, _ = fmt.Fprintf(w, "  Role:   %s\n", err.Role)
		_, _ = fmt.Fprintf(w, "  Source: %s\n", err.Source)
	}
}
