package output

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/ajxudir/playrefine/pkg/straights"
)

// WriteRefineResult writes refine results in the specified format.
//
// JSON is compact (one line) for easy parsing by tools; XML is indented and
// starts with the standard header; CSV has one row per final straight.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, or FormatCSV)
//   - result: Refine result data to write
//
// Returns:
//   - error: When format is unsupported, returns an error; when write fails, returns the underlying error; otherwise returns nil
func WriteRefineResult(w io.Writer, format Format, result *RefineResult) error {
	switch format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(result)
	case FormatXML:
		return writeRefineXML(w, result)
	case FormatCSV:
		return writeRefineCSV(w, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeRefineXML writes the XML header, the indented document and a newline.
func writeRefineXML(w io.Writer, result *RefineResult) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(result); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// writeRefineCSV writes one INDEX, STRAIGHT, BOX row per final straight.
//
// csv.Writer buffers, so write failures surface from Error after Flush.
func writeRefineCSV(w io.Writer, result *RefineResult) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"INDEX", "STRAIGHT", "BOX"})
	for i, s := range result.Straights {
		_ = cw.Write([]string{strconv.Itoa(i + 1), s, boxOf(s)})
	}
	cw.Flush()
	return cw.Error()
}

// boxOf returns the box form of s, or "" when s is malformed.
func boxOf(s string) string {
	box, err := straights.Normalize(s)
	if err != nil {
		return ""
	}
	return box.String()
}

// WriteRefineTable prints the final straights as a numbered table.
//
// Parameters:
//   - w: Destination writer
//   - list: Final straights in order
func WriteRefineTable(w io.Writer, list []string) {
	table := NewTable("#", "STRAIGHT", "BOX").AlignRight(0)
	for i, s := range list {
		table.AddRow(strconv.Itoa(i+1), s, boxOf(s))
	}
	table.Fprint(w)
}

// WriteBoxTable prints each straight with its box and tuple key.
//
// Malformed straights are skipped.
//
// Parameters:
//   - w: Destination writer
//   - list: Straights to describe
func WriteBoxTable(w io.Writer, list []string) {
	table := NewTable("STRAIGHT", "BOX", "KEY")
	for _, s := range list {
		box, err := straights.Normalize(s)
		if err != nil {
			continue
		}
		table.AddRow(s, box.String(), box.Tuple())
	}
	table.Fprint(w)
}
