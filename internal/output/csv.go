package output

import (
	"encoding/csv"
	"io"

	"github.com/shubham/mfte/internal/ntfs"
)

// WriteCSV writes data as comma-separated rows with a header line.
func WriteCSV(w io.Writer, kind ntfs.Kind, data any) error {
	rows, err := ToRows(kind, data)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(rows.Header); err != nil {
		return err
	}
	for _, row := range rows.Data {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
