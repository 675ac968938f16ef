package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/registro-ocr/internal/adapters/driven/export"
	"github.com/custodia-labs/registro-ocr/internal/core/domain"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driving"
)

var (
	extractEncoding   string
	extractOutJSON    string
	extractOutCSV     string
	extractSave       bool
	extractSource     string
	extractProvenance bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract the form fields of one transcript",
	Long: `Extract the twelve registry-form fields from one OCR transcript and print
them as JSON. The transcript is read from the file argument or, when none
is given (or it is "-"), from standard input.

Fields that could not be read are empty strings. Fields read through a
layout heuristic are reported with --provenance.

Examples:
  registro extract scan-18.txt
  tesseract scan.png - | registro extract --save
  registro extract --encoding windows-1252 --out-csv out/scan.csv scan.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractEncoding, "encoding", "e", "", "input encoding label (default from config, utf-8)")
	extractCmd.Flags().StringVar(&extractOutJSON, "out-json", "", "also write the record to this JSON file")
	extractCmd.Flags().StringVar(&extractOutCSV, "out-csv", "", "also write the record to this CSV file")
	extractCmd.Flags().BoolVarP(&extractSave, "save", "s", false, "save the record to the database")
	extractCmd.Flags().StringVar(&extractSource, "source", "", "source id stored with the record (default the file path)")
	extractCmd.Flags().BoolVarP(&extractProvenance, "provenance", "p", false, "print how each field was obtained")
	rootCmd.AddCommand(extractCmd)
}

// provenanceOutput is printed by --provenance. Provenance reuses the
// record layout so both objects list the fields in form order.
type provenanceOutput struct {
	Record        domain.Record `json:"record"`
	Provenance    domain.Record `json:"provenance"`
	LowConfidence []string      `json:"low_confidence"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errNoExtraction
	}

	raw, err := readTranscript(cmd, args, inputEncoding(extractEncoding))
	if err != nil {
		return err
	}
	if extractSource != "" {
		raw.SourceID = extractSource
	}

	result, err := extractionService.Extract(cmd.Context(), &raw)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	rec := result.Record()

	if err := writeOutputs(rec, extractOutJSON, extractOutCSV); err != nil {
		return err
	}

	if extractProvenance {
		if err := export.EncodeJSON(cmd.OutOrStdout(), newProvenanceOutput(result)); err != nil {
			return err
		}
	} else if err := export.EncodeJSON(cmd.OutOrStdout(), rec); err != nil {
		return err
	}

	if extractSave {
		if err := extractionService.Save(cmd.Context(), result); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		cmd.PrintErrf("Saved record %s\n", rec.Get(domain.FieldDNI))
	}
	return nil
}

func newProvenanceOutput(result *driving.ExtractionResult) provenanceOutput {
	out := provenanceOutput{
		Record:        result.Record(),
		LowConfidence: []string{},
	}
	for _, f := range domain.Fields() {
		out.Provenance.Set(f, string(result.Extraction.Provenance(f)))
	}
	for _, f := range result.Extraction.LowConfidence() {
		out.LowConfidence = append(out.LowConfidence, f.String())
	}
	return out
}

// writeOutputs writes rec to the JSON and CSV paths that are set.
func writeOutputs(rec domain.Record, jsonPath, csvPath string) error {
	if jsonPath != "" {
		if err := export.WriteJSON(jsonPath, rec); err != nil {
			return fmt.Errorf("writing %s: %w", jsonPath, err)
		}
	}
	if csvPath != "" {
		if err := export.WriteCSV(csvPath, []domain.Record{rec}); err != nil {
			return fmt.Errorf("writing %s: %w", csvPath, err)
		}
	}
	return nil
}
