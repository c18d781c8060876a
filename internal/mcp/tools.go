package mcp

import "github.com/mark3labs/mcp-go/mcp"

// getInstallCommandTool defines the get_install_command MCP tool.
var getInstallCommandTool = mcp.NewTool("get_install_command",
	mcp.WithDescription("Get the shell command that installs the editor package."),
)

// listFeaturesTool defines the list_features MCP tool.
var listFeaturesTool = mcp.NewTool("list_features",
	mcp.WithDescription("List the editor's features and the benefits of using it."),
	mcp.WithString("kind",
		mcp.Description("Restrict the list to one collection (default both)"),
		mcp.Enum("features", "benefits"),
	),
)

// listPropsTool defines the list_props MCP tool.
var listPropsTool = mcp.NewTool("list_props",
	mcp.WithDescription("List every configuration prop of the editor component with its type, default and description."),
)

// getPropTool defines the get_prop MCP tool.
var getPropTool = mcp.NewTool("get_prop",
	mcp.WithDescription("Get the type, default value and description of one editor prop."),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("Prop name, e.g. onMediaUpload"),
	),
)

// listShortcutsTool defines the list_shortcuts MCP tool.
var listShortcutsTool = mcp.NewTool("list_shortcuts",
	mcp.WithDescription("List the editor's keyboard shortcuts."),
)

// getChangelogTool defines the get_changelog MCP tool.
var getChangelogTool = mcp.NewTool("get_changelog",
	mcp.WithDescription("Get the changelog highlights."),
)
