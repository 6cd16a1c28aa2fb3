package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// FormatPlayList joins straights into the downloadable play list body.
//
// Straights are separated by "\n" with no trailing newline, so an empty
// list yields an empty string.
func FormatPlayList(list []string) string {
	return strings.Join(list, "\n")
}

// WritePlayList writes the play list body to w.
//
// Parameters:
//   - w: Destination writer
//   - list: Final straights in order
//
// Returns:
//   - error: The underlying write error, if any
func WritePlayList(w io.Writer, list []string) error {
	_, err := io.WriteString(w, FormatPlayList(list))
	return err
}

// WritePlayListFile saves the play list to path, replacing any existing file.
//
// Parameters:
//   - path: Destination file path
//   - list: Final straights in order
//
// Returns:
//   - error: When the file cannot be created, written or closed
func WritePlayListFile(path string, list []string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write play list %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to write play list %s: %w", path, cerr)
		}
	}()

	if err := WritePlayList(f, list); err != nil {
		return fmt.Errorf("failed to write play list %s: %w", path, err)
	}
	return nil
}
