package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var fixupsCmd = &cobra.Command{
	Use:   "fixups",
	Short: "List the text fix-ups",
	Long: `List the text fix-ups that can run on transcripts before extraction.
Enable them with "registro settings set fixups <name>,<name>".`,
	Args: cobra.NoArgs,
	RunE: runFixups,
}

func init() {
	rootCmd.AddCommand(fixupsCmd)
}

func runFixups(cmd *cobra.Command, _ []string) error {
	if fixupCatalog == nil {
		return errors.New("fixups not configured")
	}

	enabled := map[string]bool{}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			for _, name := range settings.Fixups {
				enabled[name] = true
			}
		}
	}

	for _, name := range fixupCatalog.Names() {
		mark := " "
		if enabled[name] {
			mark = "*"
		}
		cmd.Printf("%s %-16s %s\n", mark, name, fixupCatalog.Describe(name))
	}
	cmd.Println()
	cmd.Println("* enabled")
	return nil
}
