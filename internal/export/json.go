package export

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON writes reports as an indented JSON array.
func WriteJSON(w io.Writer, reports []*Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("export: json: %w", err)
	}
	return nil
}
