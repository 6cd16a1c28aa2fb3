package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/playrefine/pkg/utils"
)

// columnGap separates adjacent columns.
const columnGap = "  "

// Table buffers rows and prints them as aligned columns under a header and a
// dashed rule. Widths are measured with utils.DisplayWidth so wide runes line up.
//
// Fields:
//   - headers: Column titles
//   - right: Columns padded on the left (counters)
//   - widths: Widest cell seen per column, header included
//   - rows: Buffered data rows
type Table struct {
	headers []string
	right   []bool
	widths  []int
	rows    [][]string
}

// NewTable creates a table with left-aligned columns titled by headers.
//
// Parameters:
//   - headers: Column titles, one per column
//
// Returns:
//   - *Table: An empty table
func NewTable(headers ...string) *Table {
	t := &Table{
		headers: headers,
		right:   make([]bool, len(headers)),
		widths:  make([]int, len(headers)),
	}
	for i, h := range headers {
		t.widths[i] = utils.DisplayWidth(h)
	}
	return t
}

// AlignRight right-aligns column col and returns the table.
func (t *Table) AlignRight(col int) *Table {
	if col >= 0 && col < len(t.right) {
		t.right[col] = true
	}
	return t
}

// AddRow buffers one row and widens columns to fit it.
//
// Values beyond the column count are dropped; missing values print blank.
//
// Parameters:
//   - values: Cell values, one per column
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddRow(values ...string) *Table {
	row := make([]string, len(t.headers))
	copy(row, values)
	for i, v := range row {
		if w := utils.DisplayWidth(v); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
	return t
}

// Fprint writes the header, the rule and every buffered row to w.
//
// Trailing padding is trimmed from each line.
func (t *Table) Fprint(w io.Writer) {
	rule := make([]string, len(t.widths))
	for i, width := range t.widths {
		rule[i] = strings.Repeat("-", width)
	}

	_, _ = fmt.Fprintln(w, t.line(t.headers))
	_, _ = fmt.Fprintln(w, strings.Join(rule, columnGap))
	for _, row := range t.rows {
		_, _ = fmt.Fprintln(w, t.line(row))
	}
}

// line pads each cell to its column width.
func (t *Table) line(cells []string) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		if t.right[i] {
			parts[i] = utils.ToWidthRight(c, t.widths[i])
		} else {
			parts[i] = utils.ToWidth(c, t.widths[i])
		}
	}
	return strings.TrimRight(strings.Join(parts, columnGap), " ")
}
