package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

// EncodeJSON writes v indented by two spaces and newline terminated.
// v is a domain.Record, a slice of them, or any value embedding them.
func EncodeJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteJSON writes a single record to path, creating parent directories.
func WriteJSON(path string, rec domain.Record) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeJSON(w, rec)
	})
}

// WriteJSONArray writes records to path as a JSON array.
func WriteJSONArray(path string, recs []domain.Record) error {
	if recs == nil {
		recs = []domain.Record{}
	}
	return writeFile(path, func(w io.Writer) error {
		return EncodeJSON(w, recs)
	})
}
