package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func checkJavadocTool() mcp.Tool {
	return mcp.Tool{
		Name:        "check_javadoc",
		Description: "Check the Javadoc of Java methods and constructors and report missing, unused or duplicate tags",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Java file or directory to check. Directories are searched recursively",
				},
				"source": map[string]interface{}{
					"type":        "string",
					"description": "Java source text to check instead of a path",
				},
				"filename": map[string]interface{}{
					"type":        "string",
					"description": "Name reported for inline source",
					"default":     defaultFilename,
				},
				"config": map[string]interface{}{
					"type":        "string",
					"description": "Configuration file (.yaml, .toml or checkstyle .xml)",
				},
			},
		},
	}
}
