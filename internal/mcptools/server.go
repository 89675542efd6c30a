// Package mcptools exposes the branding generators as Model Context Protocol tools.
package mcptools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/jonathan/brandcraft/internal/synth"
)

// Version is reported to MCP clients during initialization.
const Version = "1.0.0"

// New creates an MCP server with all generation tools registered.
func New(engine *synth.Engine, logger *zap.Logger) *mcp.Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	bt := &BrandTools{Engine: engine, Logger: logger}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "brandcraft",
		Version: Version,
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "generate_brand_names",
		Description: "Suggest ten brand names for an industry, optionally blending in keywords and a tone",
	}, bt.GenerateBrandNames)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "generate_logos",
		Description: "Produce four placeholder logo variations for a brand name, style and color pair",
	}, bt.GenerateLogos)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "generate_brand_identity",
		Description: "Write a mission, vision, core values, tagline and brand story",
	}, bt.GenerateBrandIdentity)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "generate_content",
		Description: "Write marketing copy: social_post, ad_copy, blog or email",
	}, bt.GenerateContent)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "analyze_sentiment",
		Description: "Score the sentiment of text and suggest how to respond to it",
	}, bt.AnalyzeSentiment)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "chat",
		Description: "Ask the branding consultant a question (SWOT, positioning, campaigns, general advice)",
	}, bt.Chat)

	return srv
}
