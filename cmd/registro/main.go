// Command registro extracts military service records from OCR transcripts.
package main

import (
	"os"

	"github.com/custodia-labs/registro-ocr/internal/adapters/driven/config/file"
	"github.com/custodia-labs/registro-ocr/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/registro-ocr/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/registro-ocr/internal/adapters/driving/cli"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driven"
	"github.com/custodia-labs/registro-ocr/internal/core/services"
	"github.com/custodia-labs/registro-ocr/internal/extractor"
	"github.com/custodia-labs/registro-ocr/internal/fixups"
	"github.com/custodia-labs/registro-ocr/internal/logger"
	"github.com/custodia-labs/registro-ocr/internal/normalisers/ocrtext"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = ""

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices wires the stores and services for one invocation.
func buildServices(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	registry := fixups.NewRegistry()
	fixups.RegisterDefaults(registry)

	settingsService := services.NewSettingsService(configStore, registry.Names())
	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}

	var (
		recordStore driven.RecordStore
		closeFn     func() error
	)
	if opts.InMemory {
		recordStore = memory.NewRecordStore()
	} else {
		dataDir := opts.DataDir
		if dataDir == "" {
			dataDir = settings.DataDir
		}
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, err
		}
		logger.Debug("record database: %s", store.Path())
		recordStore = store.RecordStore()
		closeFn = store.Close
	}

	// A bad fix-up list must not lock the user out of "settings set".
	pipeline, err := registry.Pipeline(settings.Fixups)
	if err != nil {
		logger.Warn("ignoring configured fix-ups: %v", err)
		pipeline = fixups.NewPipeline()
	}

	extraction := services.NewExtractionService(
		ocrtext.New(),
		extractor.New(),
		services.WithFixups(pipeline),
		services.WithRecordStore(recordStore),
		services.WithWorkers(settings.Workers),
	)

	return &cli.Services{
		Extraction: extraction,
		Records:    services.NewRecordService(recordStore),
		Settings:   settingsService,
		Fixups:     registry,
		Close:      closeFn,
	}, nil
}
