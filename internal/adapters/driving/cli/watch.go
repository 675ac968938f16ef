package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/registro-ocr/internal/adapters/driven/export"
	"github.com/custodia-labs/registro-ocr/internal/connectors/filesystem"
	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

var (
	watchEncoding string
	watchSave     bool
	watchOutDir   string
	watchExisting bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Extract transcripts as they appear in a directory",
	Long: `Watch a directory tree and extract every .txt transcript that is created
or rewritten in it, one line per transcript. Runs until interrupted.

Examples:
  registro watch ./scans --save
  registro watch ./scans --existing --out-dir ./records`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchEncoding, "encoding", "e", "", "input encoding label (default from config, utf-8)")
	watchCmd.Flags().BoolVarP(&watchSave, "save", "s", false, "save each record to the database")
	watchCmd.Flags().StringVar(&watchOutDir, "out-dir", "", "write each record to <out-dir>/<name>.json")
	watchCmd.Flags().BoolVar(&watchExisting, "existing", false, "extract the transcripts already in the directory first")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errNoExtraction
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connector := filesystem.New(args[0])
	defer connector.Close()

	paths, err := connector.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watching %s: %w", args[0], err)
	}

	encoding := inputEncoding(watchEncoding)
	if watchExisting {
		existing, err := connector.Scan(ctx)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", args[0], err)
		}
		for _, path := range existing {
			processWatched(ctx, cmd, path, encoding)
		}
	}

	cmd.PrintErrf("Watching %s (Ctrl+C to stop)\n", args[0])
	for path := range paths {
		processWatched(ctx, cmd, path, encoding)
	}
	return nil
}

// processWatched extracts one transcript and reports the outcome. Failures
// are printed and do not stop the watch.
func processWatched(ctx context.Context, cmd *cobra.Command, path, encoding string) {
	raw, err := readTranscriptFile(path, encoding)
	if err != nil {
		cmd.PrintErrf("  FAIL %s: %v\n", path, err)
		return
	}
	result, err := extractionService.Extract(ctx, &raw)
	if err != nil {
		cmd.PrintErrf("  FAIL %s: %v\n", path, err)
		return
	}
	rec := result.Record()

	if watchOutDir != "" {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".json"
		if err := export.WriteJSON(filepath.Join(watchOutDir, name), rec); err != nil {
			cmd.PrintErrf("  FAIL %s: %v\n", path, err)
			return
		}
	}

	status := ""
	if watchSave {
		status = " saved"
		if err := extractionService.Save(ctx, result); err != nil {
			status = fmt.Sprintf(" not saved: %v", err)
		}
	}
	cmd.Printf("%s: %s%s\n", path, summarise(result.Extraction), status)
}

// summarise describes an extraction in one line.
func summarise(ex domain.Extraction) string {
	filled := 0
	for _, v := range ex.Record.Values() {
		if v != "" {
			filled++
		}
	}
	dni := ex.Record.Get(domain.FieldDNI)
	if dni == "" {
		dni = "-"
	}
	line := fmt.Sprintf("DNI %s, %d/%d fields", dni, filled, len(domain.Fields()))
	if low := ex.LowConfidence(); len(low) > 0 {
		names := make([]string, len(low))
		for i, f := range low {
			names[i] = f.String()
		}
		line += ", review " + strings.Join(names, ", ")
	}
	return line
}
