// Package cli implements the registro command line.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/registro-ocr/internal/core/ports/driving"
	"github.com/custodia-labs/registro-ocr/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

// Options are the global flags the service factory needs.
type Options struct {
	ConfigDir string
	DataDir   string
	// InMemory keeps saved records in memory for the life of the process.
	InMemory bool
}

// FixupCatalog lists the registered text fix-ups.
type FixupCatalog interface {
	Names() []string
	Describe(name string) string
}

// Services are the driving ports the commands use.
type Services struct {
	Extraction driving.ExtractionService
	Records    driving.RecordService
	Settings   driving.SettingsService
	Fixups     FixupCatalog

	// Close releases the stores behind the services. May be nil.
	Close func() error
}

// ServiceFactory builds the services for one command invocation.
type ServiceFactory func(opts Options) (*Services, error)

var (
	extractionService driving.ExtractionService
	recordService     driving.RecordService
	settingsService   driving.SettingsService
	fixupCatalog      FixupCatalog

	serviceFactory ServiceFactory
	closeServices  func() error
)

var (
	verbose   bool
	configDir string
	dataDir   string
	dryRun    bool
)

// annotationNoServices marks commands that run without the services.
const annotationNoServices = "registro/no-services"

var rootCmd = &cobra.Command{
	Use:   "registro",
	Short: "Extract military service records from OCR transcripts",
	Long: `registro reads OCR transcripts of scanned military service registry forms
and extracts the twelve form fields (names, DNI, dates, unit, rank...).

Records can be printed, exported to JSON or CSV, and saved to a local
database keyed by DNI.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupServices,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return teardownServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress and extraction traces to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.registro)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "record database directory (default ~/.registro/data)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "keep saved records in memory; nothing is written to disk")
}

// SetServiceFactory sets how services are built once flags are parsed.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetServices installs ready-made services.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	extractionService = s.Extraction
	recordService = s.Records
	settingsService = s.Settings
	fixupCatalog = s.Fixups
	closeServices = s.Close
}

// SetVersion sets the version reported by "registro version".
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	defer teardownServices() //nolint:errcheck
	return rootCmd.Execute()
}

func setupServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if serviceFactory == nil || cmd.Annotations[annotationNoServices] == "true" {
		return nil
	}
	services, err := serviceFactory(Options{
		ConfigDir: configDir,
		DataDir:   dataDir,
		InMemory:  dryRun,
	})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)
	return nil
}

func teardownServices() error {
	if closeServices == nil {
		return nil
	}
	closeFn := closeServices
	closeServices = nil
	return closeFn()
}

var (
	errNoExtraction = errors.New("extraction service not configured")
	errNoRecords    = errors.New("record service not configured")
	errNoSettings   = errors.New("settings service not configured")
)
