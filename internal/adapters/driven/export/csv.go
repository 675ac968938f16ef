package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

// EncodeCSV writes a header row of field labels followed by one row per
// record.
func EncodeCSV(w io.Writer, recs []domain.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(domain.FieldNames()); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i, rec := range recs {
		if err := cw.Write(rec.Values()); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV writes records to path, creating parent directories.
func WriteCSV(path string, recs []domain.Record) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeCSV(w, recs)
	})
}
