package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/registro-ocr/internal/adapters/driving/mcp"
)

var (
	mcpPort int
	mcpHost string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Expose registro to AI assistants through the Model Context Protocol.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve extraction tools over MCP",
	Long: `Serve the extraction tools and saved records over MCP.

Speaks JSON-RPC on stdio unless --port is given, in which case it serves
streamable HTTP on --host:--port.

Tools:
  extract_record  transcript text -> the twelve fields with provenance
  get_record      DNI -> saved record and its source documents

Resources:
  registro://records                   every saved record
  registro://records/{dni}/documents   transcripts a record came from

Examples:
  registro mcp serve
  registro mcp serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().StringVar(&mcpHost, "host", "localhost", "HTTP listen host")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if mcpPort < 0 || mcpPort > 65535 {
		return fmt.Errorf("invalid port %d", mcpPort)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Extraction: extractionService,
		Records:    recordService,
	}, mcp.WithVersion(version))
	if err != nil {
		return err
	}

	if mcpPort == 0 {
		return server.Run(cmd.Context())
	}
	addr := net.JoinHostPort(mcpHost, strconv.Itoa(mcpPort))
	cmd.PrintErrf("MCP server listening on http://%s/\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}
