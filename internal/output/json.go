package output

import (
	"encoding/json"
	"io"
)

// WriteJSON writes data (a decoded records slice or single struct) as a
// JSON array or object, indented for readability.
func WriteJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
