package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixupsCmd(t *testing.T) {
	useTestServices(t)

	stdout, _, err := executeCommand(t, "", "fixups")
	require.NoError(t, err)

	lines := strings.Split(stdout, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.True(t, strings.HasPrefix(lines[0], "  calzado_prefix"), lines[0])
	assert.Contains(t, stdout, "* setiembre")
	assert.Contains(t, stdout, "* email_spacing")
	assert.Contains(t, stdout, "  clase_prefix")
	assert.Contains(t, stdout, `"Setiembre" -> "Septiembre"`)
	assert.Contains(t, stdout, "* enabled")
}

func TestFixupsCmd_FollowsSettings(t *testing.T) {
	env := useTestServices(t)
	require.NoError(t, env.config.Set("fixups.enabled", []string{"clase_prefix"}))

	stdout, _, err := executeCommand(t, "", "fixups")
	require.NoError(t, err)
	assert.Contains(t, stdout, "* clase_prefix")
	assert.Contains(t, stdout, "  setiembre")
}

func TestFixupsCmd_NotConfigured(t *testing.T) {
	SetServices(nil)

	_, _, err := executeCommand(t, "", "fixups")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixups not configured")
}
