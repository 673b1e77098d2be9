package serialize

import (
	"encoding/json"
	"io"
)

// WriteJSON encodes data as one line of JSON followed by a newline.
func WriteJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(data)
}
