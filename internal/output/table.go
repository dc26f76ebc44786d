package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shubham/mfte/internal/ntfs"
)

// Table prints a fixed-width console rendering of data to w. limit caps
// the number of data rows printed; 0 means unlimited.
func Table(w io.Writer, kind ntfs.Kind, data any, limit int) error {
	rows, err := ToRows(kind, data)
	if err != nil {
		return err
	}

	widths := make([]int, len(rows.Header))
	for i, h := range rows.Header {
		widths[i] = len(h)
	}
	shown := rows.Data
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, row := range shown {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow(w, rows.Header, widths)
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	writeRow(w, sep, widths)
	for _, row := range shown {
		writeRow(w, row, widths)
	}

	if limit > 0 && len(rows.Data) > limit {
		fmt.Fprintf(w, "... %d more rows omitted (-limit %d)\n", len(rows.Data)-limit, limit)
	}

	return nil
}

func writeRow(w io.Writer, cells []string, widths []int) {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	fmt.Fprintln(w, strings.Join(padded, "  "))
}
