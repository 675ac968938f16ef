package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/registro-ocr/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/registro-ocr/internal/core/services"
	"github.com/custodia-labs/registro-ocr/internal/extractor"
	"github.com/custodia-labs/registro-ocr/internal/fixups"
	"github.com/custodia-labs/registro-ocr/internal/normalisers/ocrtext"
)

const sampleTranscript = `FILIACIÓN DEL INSCRITO
Apellidos: PÉREZ GÓMEZ
Nombres: JUAN
DNI: 30123456
Día: 5 Mes: Setiembre Año: 1955
CLASE: 1955
Grado: Cabo
`

// testEnv holds the in-memory services installed for one test.
type testEnv struct {
	records *memory.RecordStore
	config  *memory.ConfigStore
}

// useTestServices installs services backed by memory stores.
func useTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		records: memory.NewRecordStore(),
		config:  memory.NewConfigStore(),
	}
	registry := fixups.NewRegistry()
	fixups.RegisterDefaults(registry)

	SetServices(&Services{
		Extraction: services.NewExtractionService(ocrtext.New(), extractor.New(),
			services.WithRecordStore(env.records), services.WithWorkers(2)),
		Records:  services.NewRecordService(env.records),
		Settings: services.NewSettingsService(env.config, registry.Names()),
		Fixups:   registry,
	})
	t.Cleanup(func() { SetServices(nil) })
	return env
}

// executeCommand runs the root command with args and returns what it wrote
// to stdout and stderr. Flags are reset afterwards.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	var in io.Reader = strings.NewReader(stdin)
	rootCmd.SetIn(in)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
