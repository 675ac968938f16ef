package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/registro-ocr/internal/adapters/driven/export"
	"github.com/custodia-labs/registro-ocr/internal/connectors/filesystem"
	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

var (
	batchEncoding string
	batchOutJSON  string
	batchOutCSV   string
	batchSave     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <file|dir>...",
	Short: "Extract many transcripts at once",
	Long: `Extract every transcript named on the command line. Directories are
searched recursively for .txt files. Transcripts are processed in parallel
(see the workers setting); output keeps the order of the input.

Without --out-json or --out-csv the records are printed as a JSON array.
A transcript that cannot be read or saved is reported and skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchEncoding, "encoding", "e", "", "input encoding label (default from config, utf-8)")
	batchCmd.Flags().StringVar(&batchOutJSON, "out-json", "", "write the records to this file as a JSON array")
	batchCmd.Flags().StringVar(&batchOutCSV, "out-csv", "", "write the records to this CSV file")
	batchCmd.Flags().BoolVarP(&batchSave, "save", "s", false, "save the records to the database")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errNoExtraction
	}

	paths, err := collectTranscripts(cmd.Context(), args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		cmd.PrintErrln("No transcripts found.")
		return nil
	}

	encoding := inputEncoding(batchEncoding)
	raws := make([]domain.RawDocument, 0, len(paths))
	failed := 0
	for _, path := range paths {
		raw, err := readTranscriptFile(path, encoding)
		if err != nil {
			cmd.PrintErrf("  FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		raws = append(raws, raw)
	}

	items, err := extractionService.ExtractBatch(cmd.Context(), raws)
	if err != nil {
		return err
	}

	recs := make([]domain.Record, 0, len(items))
	saved := 0
	for _, item := range items {
		if item.Err != nil {
			cmd.PrintErrf("  FAIL %s: %v\n", item.SourceID, item.Err)
			failed++
			continue
		}
		recs = append(recs, item.Result.Record())

		if batchSave {
			if err := extractionService.Save(cmd.Context(), item.Result); err != nil {
				cmd.PrintErrf("  SKIP %s: %v\n", item.SourceID, err)
				continue
			}
			saved++
		}
	}

	if batchOutJSON != "" {
		if err := export.WriteJSONArray(batchOutJSON, recs); err != nil {
			return fmt.Errorf("writing %s: %w", batchOutJSON, err)
		}
	}
	if batchOutCSV != "" {
		if err := export.WriteCSV(batchOutCSV, recs); err != nil {
			return fmt.Errorf("writing %s: %w", batchOutCSV, err)
		}
	}
	if batchOutJSON == "" && batchOutCSV == "" {
		if err := export.EncodeJSON(cmd.OutOrStdout(), recs); err != nil {
			return err
		}
	}

	cmd.PrintErrf("Extracted %d of %d transcripts", len(recs), len(paths))
	if batchSave {
		cmd.PrintErrf(", saved %d", saved)
	}
	if failed > 0 {
		cmd.PrintErrf(", %d failed", failed)
	}
	cmd.PrintErrln()
	return nil
}

// collectTranscripts expands args into transcript paths. Files are taken
// as given; directories contribute their .txt files, sorted.
func collectTranscripts(ctx context.Context, args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		found, err := filesystem.New(arg).Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", arg, err)
		}
		paths = append(paths, found...)
	}
	return paths, nil
}
