package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dhamidi/style61b/config"
	"github.com/dhamidi/style61b/format"
	"github.com/dhamidi/style61b/java/codebase"
)

const (
	ErrorCodeInvalidParams = -32602
	ErrorCodeInternalError = -32603
)

const defaultFilename = "Source.java"

type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{Code: code, Message: message, Data: data}
}

func (s *Server) handleCheckJavadoc(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path := getStringDefault(args, "path", "")
	source := getStringDefault(args, "source", "")
	if (path == "") == (source == "") {
		return nil, newMCPError(ErrorCodeInvalidParams, "exactly one of path or source is required", map[string]interface{}{
			"param":  "path",
			"reason": "provide a path or inline source",
		})
	}

	cfg := s.config
	if name := getStringDefault(args, "config", ""); name != "" {
		loaded, err := config.Load(name)
		if err != nil {
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid config", map[string]interface{}{
				"param":  "config",
				"reason": err.Error(),
			})
		}
		cfg = loaded
	}

	c, err := codebase.FromConfig(cfg)
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid config", map[string]interface{}{
			"param":  "config",
			"reason": err.Error(),
		})
	}

	var results []codebase.Result
	if source != "" {
		filename := getStringDefault(args, "filename", defaultFilename)
		if err := c.UpdateFile(ctx, filename, []byte(source)); err != nil {
			return nil, newMCPError(ErrorCodeInternalError, "parse failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		results = []codebase.Result{c.Check(filename)}
	} else {
		if err := c.Load(ctx, []string{path}); err != nil {
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid path", map[string]interface{}{
				"param":  "path",
				"reason": err.Error(),
			})
		}
		if results, err = c.CheckAll(ctx); err != nil {
			return nil, newMCPError(ErrorCodeInternalError, "check failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	diagnostics, failed := codebase.Count(results)
	log.Debugf("check_javadoc: %d files, %d diagnostics, %d failed", len(results), diagnostics, failed)

	report := format.BuildReport(results, cfg.SeverityOrDefault())
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "encode failed", nil)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok && val != "" {
		return val
	}
	return defaultValue
}
