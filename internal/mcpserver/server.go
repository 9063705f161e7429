// Package mcpserver exposes the deck to MCP clients over stdio: listing and
// reading principles, preparing share casts and building tip payment links.
// Nothing here opens a browser or a wallet; the tools only return payloads.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"principles/internal/card"
	"principles/internal/principles"
	"principles/internal/share"
	"principles/internal/tip"
	"principles/pkg/logging"
)

const subsystem = "MCPServer"

// TipTarget is the fixed recipient of tips plus the default amount.
type TipTarget struct {
	Address string
	FID     int
	Token   string
	ChainID int
	Default tip.Amount
}

// Server wraps an MCP server with the deck tools registered.
type Server struct {
	store     *principles.Store
	renderer  *card.Renderer
	templates *share.Templates
	share     *share.Gateway
	tip       TipTarget

	mcp *server.MCPServer
}

// New builds the server and registers its tools. shareGateway is used only
// for Prepare, so its Composer may be nil.
func New(name, version string, store *principles.Store, templates *share.Templates, shareGateway *share.Gateway, target TipTarget) *Server {
	s := &Server{
		store:     store,
		renderer:  card.NewRenderer(store),
		templates: templates,
		share:     shareGateway,
		tip:       target,
	}

	s.mcp = server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(false),
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("list_principles",
		mcp.WithDescription("List every principle in deck order"),
	), s.handleListPrinciples)

	s.mcp.AddTool(mcp.NewTool("get_principle",
		mcp.WithDescription("Get one principle by its id"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Principle id, starting at 1"),
		),
	), s.handleGetPrinciple)

	s.mcp.AddTool(mcp.NewTool("compose_share",
		mcp.WithDescription("Prepare the cast text and embeds for sharing a principle, or the end card when id is omitted"),
		mcp.WithNumber("id",
			mcp.Description("Principle id; omit or 0 for the end card"),
		),
	), s.handleComposeShare)

	s.mcp.AddTool(mcp.NewTool("tip_link",
		mcp.WithDescription("Build a USDC payment link for tipping the author"),
		mcp.WithString("amount",
			mcp.Description("Decimal USDC amount, e.g. \"5\" or \"2.50\""),
		),
	), s.handleTipLink)
}

// ServeStdio blocks serving MCP requests on stdin/stdout.
func (s *Server) ServeStdio() error {
	logging.Info(subsystem, "serving %d principles over stdio", s.store.Len())
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}
