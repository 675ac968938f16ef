package cli

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

func saveRecord(t *testing.T, env *testEnv, dni, apellidos, source string) {
	t.Helper()
	var rec domain.Record
	rec.Set(domain.FieldDNI, dni)
	rec.Set(domain.FieldApellidos, apellidos)
	require.NoError(t, env.records.Save(context.Background(), rec, source))
}

func TestRecordListCmd(t *testing.T) {
	env := useTestServices(t)
	saveRecord(t, env, "40000000", "GÓMEZ", "b.txt")
	saveRecord(t, env, "30000000", "PÉREZ", "a.txt")

	stdout, _, err := executeCommand(t, "", "record", "list")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Apellidos")
	assert.Contains(t, stdout, "PÉREZ")
	assert.Contains(t, stdout, "Total: 2 records")
	assert.Less(t, indexOf(stdout, "30000000"), indexOf(stdout, "40000000"))
}

func TestRecordListCmd_Empty(t *testing.T) {
	useTestServices(t)

	stdout, _, err := executeCommand(t, "", "record", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No records saved.")

	stdout, _, err = executeCommand(t, "", "record", "list", "--json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)
}

func TestRecordListCmd_Formats(t *testing.T) {
	env := useTestServices(t)
	saveRecord(t, env, "30000000", "PÉREZ", "a.txt")

	stdout, _, err := executeCommand(t, "", "record", "list", "--json")
	require.NoError(t, err)
	var recs []domain.Record
	require.NoError(t, json.Unmarshal([]byte(stdout), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "PÉREZ", recs[0].Get(domain.FieldApellidos))

	stdout, _, err = executeCommand(t, "", "record", "list", "--csv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Nombres,Apellidos,DNI")
	assert.Contains(t, stdout, ",PÉREZ,30000000,")
}

func TestRecordGetCmd(t *testing.T) {
	env := useTestServices(t)
	saveRecord(t, env, "30000000", "PÉREZ", "a.txt")

	stdout, _, err := executeCommand(t, "", "record", "get", "30000000")
	require.NoError(t, err)
	assert.Contains(t, stdout, "DNI 30000000")
	assert.Contains(t, stdout, "Apellidos")
	assert.Contains(t, stdout, "PÉREZ")
	assert.Contains(t, stdout, "(empty)")
	assert.Contains(t, stdout, "Unidad de Baja")

	stdout, _, err = executeCommand(t, "", "record", "get", "--json", "30000000")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"Apellidos": "PÉREZ"`)
}

func TestRecordGetCmd_NotFound(t *testing.T) {
	useTestServices(t)

	_, _, err := executeCommand(t, "", "record", "get", "99999999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no record for DNI 99999999")
}

func TestRecordDocumentsCmd(t *testing.T) {
	env := useTestServices(t)
	saveRecord(t, env, "30000000", "PÉREZ", "box-1/a.txt")
	saveRecord(t, env, "30000000", "", "box-2/a.txt")

	stdout, _, err := executeCommand(t, "", "record", "documents", "30000000")
	require.NoError(t, err)
	assert.Contains(t, stdout, "OCR")
	assert.Less(t, indexOf(stdout, "box-1/a.txt"), indexOf(stdout, "box-2/a.txt"))
	assert.Contains(t, stdout, "Total: 2 documents")

	_, _, err = executeCommand(t, "", "record", "documents", "99999999")
	assert.Error(t, err)
}

func TestRecordCmds_NoService(t *testing.T) {
	SetServices(nil)

	for _, args := range [][]string{
		{"record", "list"},
		{"record", "get", "30000000"},
		{"record", "documents", "30000000"},
	} {
		_, _, err := executeCommand(t, "", args...)
		assert.ErrorIs(t, err, errNoRecords)
	}
}

func TestRenderRecord(t *testing.T) {
	var rec domain.Record
	rec.Set(domain.FieldDNI, "30000000")
	rec.Set(domain.FieldGrado, "Cabo")

	out := renderRecord(rec)
	for _, name := range domain.FieldNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Cabo")
}

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}
