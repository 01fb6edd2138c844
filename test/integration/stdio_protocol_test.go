package integration_test

import (
	"context"
	"os"
	"os/exec"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// TestStdioProtocolCompliance verifies the server works correctly over stdio
// transport using the official MCP SDK client. This catches protocol issues
// that in-process tests might miss.
func TestStdioProtocolCompliance(t *testing.T) {
	binaryPath := "./bin/etude"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		// Try relative to test directory
		binaryPath = "../../bin/etude"
		if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
			t.Skip("Server binary not found. Run 'make build' first.")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath)
	cmd.Env = append(os.Environ(),
		"ETUDE_TRANSPORT=stdio",
		"ETUDE_DB_PATH=:memory:",
	)

	transport := &sdkmcp.CommandTransport{
		Command: cmd,
	}

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	require.NoError(t, err, "Failed to connect to server")
	defer session.Close()

	t.Run("ServerInfo", func(t *testing.T) {
		initResult := session.InitializeResult()
		require.NotNil(t, initResult)
		require.NotNil(t, initResult.ServerInfo)
		require.Equal(t, "etude", initResult.ServerInfo.Name)
		require.Equal(t, "0.1.0", initResult.ServerInfo.Version)
	})

	t.Run("ListTools", func(t *testing.T) {
		tools, err := session.ListTools(ctx, nil)
		require.NoError(t, err, "tools/list failed")

		toolNames := make(map[string]bool)
		for _, tool := range tools.Tools {
			toolNames[tool.Name] = true
		}

		expectedTools := []string{
			"paste_lessons",
			"add_lesson",
			"list_lessons",
			"plan_overview",
			"reorder_plan",
			"move_lesson",
			"toggle_done",
			"set_notes",
			"remove_lesson",
			"export_plan",
			"import_plan",
			"study_prompt",
			"practice_link",
		}
		for _, name := range expectedTools {
			require.True(t, toolNames[name], "Missing expected tool: %s", name)
		}
	})

	t.Run("ListResources", func(t *testing.T) {
		resources, err := session.ListResources(ctx, nil)
		require.NoError(t, err, "resources/list failed")

		uris := make(map[string]bool)
		for _, res := range resources.Resources {
			uris[res.URI] = true
		}
		for _, uri := range []string{"etude://docs/index", "etude://docs/workflow", "etude://docs/stages"} {
			require.True(t, uris[uri], "Missing expected resource: %s", uri)
		}
	})

	t.Run("CallPasteLessons", func(t *testing.T) {
		result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
			Name: "paste_lessons",
			Arguments: map[string]any{
				"text": "Reading the Staff",
			},
		})
		require.NoError(t, err, "tools/call paste_lessons failed")
		require.False(t, result.IsError, "paste_lessons returned error: %v", result)
		require.NotEmpty(t, result.Content)
	})
}
