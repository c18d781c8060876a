package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/textflux/textflux-site/internal/content"
)

// handleGetInstallCommand returns the install command and its hint.
func (s *Server) handleGetInstallCommand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := s.reg.InstallCommand
	if s.reg.InstallHint != "" {
		text = s.reg.InstallHint + "\n\n" + text
	}
	return mcp.NewToolResultText(text), nil
}

// handleListFeatures lists features, benefits or both.
func (s *Server) handleListFeatures(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	switch kind := request.GetString("kind", ""); kind {
	case "":
		writeItems(&sb, "Features", s.reg.Features)
		sb.WriteString("\n")
		writeItems(&sb, "Benefits", s.reg.Benefits)
	case "features":
		writeItems(&sb, "Features", s.reg.Features)
	case "benefits":
		writeItems(&sb, "Benefits", s.reg.Benefits)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown kind %q: use features or benefits", kind)), nil
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleListProps lists every prop in registry order.
func (s *Server) handleListProps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d prop(s):\n", len(s.reg.Props)))
	for _, p := range s.reg.Props {
		sb.WriteString("\n")
		writeProp(&sb, p)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetProp describes one prop by name.
func (s *Server) handleGetProp(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}
	p, ok := s.reg.Prop(name)
	if !ok {
		names := make([]string, len(s.reg.Props))
		for i, p := range s.reg.Props {
			names[i] = p.Prop
		}
		return mcp.NewToolResultError(fmt.Sprintf(
			"No prop named %q. Known props: %s",
			name, strings.Join(names, ", "),
		)), nil
	}
	var sb strings.Builder
	writeProp(&sb, p)
	return mcp.NewToolResultText(sb.String()), nil
}

// handleListShortcuts lists the keyboard shortcuts.
func (s *Server) handleListShortcuts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, sc := range s.reg.Shortcuts {
		sb.WriteString(fmt.Sprintf("%s: %s\n", sc.Action, sc.Keys))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetChangelog returns the changelog highlights.
func (s *Server) handleGetChangelog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, entry := range s.reg.Changelog {
		sb.WriteString("- ")
		sb.WriteString(entry)
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func writeItems(sb *strings.Builder, heading string, items []content.ContentItem) {
	sb.WriteString(fmt.Sprintf("%s (%d):\n", heading, len(items)))
	for _, it := range items {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", it.Title, it.Desc))
	}
}

func writeProp(sb *strings.Builder, p content.PropSpec) {
	sb.WriteString(fmt.Sprintf("Prop: %s\n", p.Prop))
	sb.WriteString(fmt.Sprintf("Type: %s\n", p.Type))
	sb.WriteString(fmt.Sprintf("Default: %s\n", p.Default))
	sb.WriteString(fmt.Sprintf("Description: %s\n", p.Desc))
}
