package cli

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

func TestBatchCmd_PrintsArrayInOrder(t *testing.T) {
	useTestServices(t)
	dir := t.TempDir()
	writeTranscript(t, dir, "b.txt", "DNI: 40000000\n")
	writeTranscript(t, dir, "a.txt", "DNI: 30000000\n")
	writeTranscript(t, dir, "notes.md", "DNI: 50000000\n")
	single := writeTranscript(t, t.TempDir(), "single.dat", "DNI: 20000000\n")

	stdout, stderr, err := executeCommand(t, "", "batch", dir, single)
	require.NoError(t, err)

	var recs []domain.Record
	require.NoError(t, json.Unmarshal([]byte(stdout), &recs))
	require.Len(t, recs, 3)
	assert.Equal(t, "30000000", recs[0].Get(domain.FieldDNI))
	assert.Equal(t, "40000000", recs[1].Get(domain.FieldDNI))
	assert.Equal(t, "20000000", recs[2].Get(domain.FieldDNI))
	assert.Contains(t, stderr, "Extracted 3 of 3 transcripts")
}

func TestBatchCmd_WritesCSVAndSaves(t *testing.T) {
	env := useTestServices(t)
	dir := t.TempDir()
	writeTranscript(t, dir, "a.txt", sampleTranscript)
	writeTranscript(t, dir, "b.txt", "Nombres: ANA\n")
	csvPath := filepath.Join(t.TempDir(), "out", "records.csv")

	stdout, stderr, err := executeCommand(t, "", "batch", "--save", "--out-csv", csvPath, dir)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "SKIP")
	assert.Contains(t, stderr, "Extracted 2 of 2 transcripts, saved 1")

	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, domain.FieldNames(), rows[0])
	assert.Equal(t, "30123456", rows[1][domain.FieldDNI])
	assert.Equal(t, "ANA", rows[2][domain.FieldNombres])

	recs, err := env.records.List(t.Context())
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestBatchCmd_UndecodableFileIsReported(t *testing.T) {
	useTestServices(t)
	dir := t.TempDir()
	writeTranscript(t, dir, "a.txt", "DNI: 30000000\n")
	jsonPath := filepath.Join(t.TempDir(), "records.json")

	_, stderr, err := executeCommand(t, "", "batch", "--encoding", "klingon", "--out-json", jsonPath, dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "FAIL")
	assert.Contains(t, stderr, "1 failed")

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestBatchCmd_EmptyDir(t *testing.T) {
	useTestServices(t)

	stdout, stderr, err := executeCommand(t, "", "batch", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "No transcripts found.")
}

func TestBatchCmd_MissingPath(t *testing.T) {
	useTestServices(t)

	_, _, err := executeCommand(t, "", "batch", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
