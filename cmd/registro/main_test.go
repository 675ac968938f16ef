package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/registro-ocr/internal/adapters/driving/cli"
	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

const transcript = "Apellidos: PÉREZ\nDNI: 30123456\nFecha de Alta: 3 Setiembre 1975\n"

func TestBuildServices_SQLite(t *testing.T) {
	configDir := t.TempDir()
	dataDir := filepath.Join(t.TempDir(), "data")

	svc, err := buildServices(cli.Options{ConfigDir: configDir, DataDir: dataDir})
	require.NoError(t, err)
	require.NotNil(t, svc.Close)

	ctx := context.Background()
	result, err := svc.Extraction.Extract(ctx, &domain.RawDocument{SourceID: "a.txt", Text: transcript})
	require.NoError(t, err)
	require.NoError(t, svc.Extraction.Save(ctx, result))
	require.NoError(t, svc.Close())

	_, err = os.Stat(filepath.Join(dataDir, "registro.db"))
	require.NoError(t, err)

	reopened, err := buildServices(cli.Options{ConfigDir: configDir, DataDir: dataDir})
	require.NoError(t, err)
	defer reopened.Close()

	rec, err := reopened.Records.Get(ctx, "30123456")
	require.NoError(t, err)
	assert.Equal(t, "PÉREZ", rec.Get(domain.FieldApellidos))
}

func TestBuildServices_InMemory(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")

	svc, err := buildServices(cli.Options{ConfigDir: t.TempDir(), DataDir: dataDir, InMemory: true})
	require.NoError(t, err)
	assert.Nil(t, svc.Close)

	_, err = os.Stat(dataDir)
	assert.True(t, os.IsNotExist(err))
}

func TestBuildServices_DataDirFromSettings(t *testing.T) {
	configDir := t.TempDir()
	dataDir := filepath.Join(t.TempDir(), "configured")
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"),
		[]byte("[storage]\ndata_dir = \""+filepath.ToSlash(dataDir)+"\"\n"), 0o600))

	svc, err := buildServices(cli.Options{ConfigDir: configDir})
	require.NoError(t, err)
	defer svc.Close()

	_, err = os.Stat(filepath.Join(dataDir, "registro.db"))
	assert.NoError(t, err)
}

func TestBuildServices_UnknownFixupIsIgnored(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"),
		[]byte("[fixups]\nenabled = [\"nope\"]\n"), 0o600))

	svc, err := buildServices(cli.Options{ConfigDir: configDir, InMemory: true})
	require.NoError(t, err)
	assert.Error(t, svc.Settings.Validate())

	result, err := svc.Extraction.Extract(context.Background(), &domain.RawDocument{Text: transcript})
	require.NoError(t, err)
	assert.Equal(t, "30123456", result.Record().Get(domain.FieldDNI))
}

func TestBuildServices_BadConfig(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("workers = = 3"), 0o600))

	_, err := buildServices(cli.Options{ConfigDir: configDir, InMemory: true})
	assert.Error(t, err)
}
