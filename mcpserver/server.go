// Package mcpserver exposes the documentation check as a Model Context
// Protocol tool.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/style61b/config"
)

const ServerName = "style61b"

var log = commonlog.GetLogger("style61b.mcp")

type Server struct {
	mcp    *server.MCPServer
	config *config.Config
}

// New creates a server whose tool calls default to cfg when the caller
// does not name a configuration file. A nil cfg means the defaults.
func New(version string, cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{
		mcp:    server.NewMCPServer(ServerName, version),
		config: cfg,
	}
	s.registerTools()
	return s
}

// Serve runs the server on stdio until the client disconnects.
func (s *Server) Serve(ctx context.Context) error {
	log.Infof("serving %s over stdio", ServerName)
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(checkJavadocTool(), s.handleCheckJavadoc)
}
