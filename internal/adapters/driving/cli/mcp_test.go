package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServeCmd_InvalidPort(t *testing.T) {
	useTestServices(t)

	_, _, err := executeCommand(t, "", "mcp", "serve", "--port", "70000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port 70000")
}

func TestMCPServeCmd_NoExtractionService(t *testing.T) {
	SetServices(nil)

	_, _, err := executeCommand(t, "", "mcp", "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extraction service")
}

func TestMCPServeCmd_Flags(t *testing.T) {
	port := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "p", port.Shorthand)
	assert.Equal(t, "0", port.DefValue)

	host := mcpServeCmd.Flags().Lookup("host")
	require.NotNil(t, host)
	assert.Equal(t, "localhost", host.DefValue)
}
