package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the settings stored in config.toml.

Keys:
  workers   transcripts extracted at once by batch (>= 1)
  fixups    comma-separated text fix-ups to run before extraction ("" for none)
  data-dir  directory of the record database
  encoding  encoding of input transcripts (utf-8, windows-1252, latin1...)`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	dataDir := settings.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}
	fixups := strings.Join(settings.Fixups, ", ")
	if fixups == "" {
		fixups = "(none)"
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("  Workers:  %d\n", settings.Workers)
	cmd.Printf("  Fixups:   %s\n", fixups)
	cmd.Printf("  Data dir: %s\n", dataDir)
	cmd.Printf("  Encoding: %s\n", settings.Encoding)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Println(warningStyle.Render(fmt.Sprintf("Warning: %v", err)))
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "workers":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: workers must be a number", domain.ErrInvalidInput)
		}
		settings.Workers = n
	case "fixups":
		settings.Fixups = splitList(value)
	case "data-dir":
		settings.DataDir = value
	case "encoding":
		if _, err := htmlindex.Get(value); err != nil {
			return fmt.Errorf("%w: %s", domain.ErrUnsupportedEncoding, value)
		}
		settings.Encoding = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
