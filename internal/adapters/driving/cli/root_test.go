package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/registro-ocr/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/registro-ocr/internal/core/services"
)

// useFactory installs f as the service factory for one test.
func useFactory(t *testing.T, f ServiceFactory) {
	t.Helper()
	SetServiceFactory(f)
	t.Cleanup(func() {
		SetServiceFactory(nil)
		SetServices(nil)
	})
}

func TestSetupServices_PassesFlags(t *testing.T) {
	var got Options
	closed := 0
	useFactory(t, func(opts Options) (*Services, error) {
		got = opts
		return &Services{
			Records: services.NewRecordService(memory.NewRecordStore()),
			Close: func() error {
				closed++
				return nil
			},
		}, nil
	})

	_, _, err := executeCommand(t, "",
		"--config-dir", "/tmp/cfg", "--data-dir", "/tmp/data", "--dry-run", "record", "list")
	require.NoError(t, err)

	assert.Equal(t, Options{ConfigDir: "/tmp/cfg", DataDir: "/tmp/data", InMemory: true}, got)
	assert.Equal(t, 1, closed)
	assert.NoError(t, teardownServices())
	assert.Equal(t, 1, closed)
}

func TestSetupServices_Defaults(t *testing.T) {
	var got Options
	useFactory(t, func(opts Options) (*Services, error) {
		got = opts
		return &Services{Records: services.NewRecordService(memory.NewRecordStore())}, nil
	})

	_, _, err := executeCommand(t, "", "record", "list")
	require.NoError(t, err)
	assert.Equal(t, Options{}, got)
}

func TestSetupServices_FactoryError(t *testing.T) {
	useFactory(t, func(Options) (*Services, error) {
		return nil, errors.New("database locked")
	})

	_, _, err := executeCommand(t, "", "record", "list")
	require.Error(t, err)
	assert.Equal(t, "initialising: database locked", err.Error())
}

func TestSetupServices_SkippedForVersion(t *testing.T) {
	called := false
	useFactory(t, func(Options) (*Services, error) {
		called = true
		return nil, errors.New("should not be called")
	})

	stdout, _, err := executeCommand(t, "", "version")
	require.NoError(t, err)
	assert.False(t, called)
	assert.Contains(t, stdout, "registro version")
}

func TestSetServices_NilResets(t *testing.T) {
	useTestServices(t)
	require.NotNil(t, extractionService)

	SetServices(nil)
	assert.Nil(t, extractionService)
	assert.Nil(t, recordService)
	assert.Nil(t, settingsService)
	assert.Nil(t, fixupCatalog)
}

func TestTeardownServices_ReturnsCloseError(t *testing.T) {
	SetServices(&Services{Close: func() error { return errors.New("busy") }})
	t.Cleanup(func() { SetServices(nil) })

	assert.EqualError(t, teardownServices(), "busy")
	assert.NoError(t, teardownServices())
}
