package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/textflux/textflux-site/internal/content"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the page content as tools.
type Server struct {
	reg *content.Registry
	mcp *server.MCPServer
}

// NewServer creates a new MCP server over reg. A nil registry means
// content.Default().
func NewServer(reg *content.Registry) *Server {
	if reg == nil {
		reg = content.Default()
	}
	s := &Server{reg: reg}

	s.mcp = server.NewMCPServer(
		"textflux-site",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(getInstallCommandTool, s.handleGetInstallCommand)
	s.mcp.AddTool(listFeaturesTool, s.handleListFeatures)
	s.mcp.AddTool(listPropsTool, s.handleListProps)
	s.mcp.AddTool(getPropTool, s.handleGetProp)
	s.mcp.AddTool(listShortcutsTool, s.handleListShortcuts)
	s.mcp.AddTool(getChangelogTool, s.handleGetChangelog)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
