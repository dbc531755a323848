/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI tool integration",
	Long: `Start a Model Context Protocol (MCP) server so AI assistants can
interact with a TaskQueue server through this CLI.

The MCP server runs over stdin/stdout and provides tools for:
- Creating tasks and projects
- Listing and filtering tasks
- Updating existing tasks
- Cancelling and deleting tasks
- Waiting for task completion

The server will run until the client disconnects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServer(ctx context.Context) error {
	apiClient := newAPIClient()

	impl := &mcp.Implementation{
		Name:    "taskqueue",
		Version: version,
	}
	server := mcp.NewServer(impl, &mcp.ServerOptions{})

	registerMCPTools(server, apiClient)

	if err := server.Run(ctx, mcp.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

func logToolCall(toolName string, params interface{}) {
	if viper.GetBool("verbose") {
		log.Printf("[MCP TOOL] %s called with params: %+v", toolName, params)
	}
}
