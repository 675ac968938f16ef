package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/registro-ocr/internal/adapters/driven/export"
	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

var (
	recordListJSON bool
	recordListCSV  bool
	recordGetJSON  bool
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Read saved records",
	Long:  `Read back the records saved with --save, keyed by DNI.`,
}

var recordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved records",
	Args:  cobra.NoArgs,
	RunE:  runRecordList,
}

var recordGetCmd = &cobra.Command{
	Use:   "get <dni>",
	Short: "Show a saved record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordGet,
}

var recordDocumentsCmd = &cobra.Command{
	Use:   "documents <dni>",
	Short: "List the transcripts a record was extracted from",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordDocuments,
}

func init() {
	recordListCmd.Flags().BoolVar(&recordListJSON, "json", false, "output records as a JSON array")
	recordListCmd.Flags().BoolVar(&recordListCSV, "csv", false, "output records as CSV")
	recordGetCmd.Flags().BoolVar(&recordGetJSON, "json", false, "output the record as JSON")

	recordCmd.AddCommand(recordListCmd)
	recordCmd.AddCommand(recordGetCmd)
	recordCmd.AddCommand(recordDocumentsCmd)
	rootCmd.AddCommand(recordCmd)
}

// listColumns are the fields shown by "record list".
var listColumns = []domain.Field{
	domain.FieldDNI,
	domain.FieldApellidos,
	domain.FieldNombres,
	domain.FieldClase,
	domain.FieldGrado,
}

func runRecordList(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errNoRecords
	}

	recs, err := recordService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	switch {
	case recordListJSON:
		if recs == nil {
			recs = []domain.Record{}
		}
		return export.EncodeJSON(cmd.OutOrStdout(), recs)
	case recordListCSV:
		return export.EncodeCSV(cmd.OutOrStdout(), recs)
	}

	if len(recs) == 0 {
		cmd.Println("No records saved.")
		return nil
	}

	headers := make([]string, len(listColumns))
	for i, f := range listColumns {
		headers[i] = f.String()
	}
	rows := make([][]string, len(recs))
	for i := range recs {
		row := make([]string, len(listColumns))
		for j, f := range listColumns {
			row[j] = recs[i].Get(f)
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	cmd.Println(t.String())
	cmd.Printf("Total: %d records\n", len(recs))
	return nil
}

func runRecordGet(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errNoRecords
	}

	rec, err := recordService.Get(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no record for DNI %s", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	if recordGetJSON {
		return export.EncodeJSON(cmd.OutOrStdout(), rec)
	}
	cmd.Println(renderRecord(*rec))
	return nil
}

// renderRecord draws a record as a boxed label/value list in form order.
func renderRecord(rec domain.Record) string {
	lines := make([]string, 0, len(domain.Fields())+2)
	lines = append(lines, titleStyle.Render("DNI "+rec.Get(domain.FieldDNI)), "")
	for _, f := range domain.Fields() {
		value := rec.Get(f)
		rendered := value
		if value == "" {
			rendered = emptyStyle.Render("(empty)")
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(f.String()), rendered))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func runRecordDocuments(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errNoRecords
	}

	traces, err := recordService.Documents(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no record for DNI %s", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	cmd.Printf("Documents for DNI %s:\n\n", args[0])
	for i := range traces {
		cmd.Printf("  %s  %s  %s\n",
			traces[i].CreatedAt.Local().Format("2006-01-02 15:04:05"),
			traces[i].Kind,
			traces[i].SourceID)
	}
	cmd.Println()
	cmd.Printf("Total: %d documents\n", len(traces))
	return nil
}
