package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// successText wraps a fixed success sentence in a tool-result envelope.
func successText(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultText(msg)
}

// jsonText wraps a value serialized as 2-space-indented JSON. Query handlers
// return their domain results this way.
func jsonText(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}
