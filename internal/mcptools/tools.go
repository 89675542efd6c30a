package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/jonathan/brandcraft/internal/synth"
	"github.com/jonathan/brandcraft/internal/types"
)

// BrandTools holds what the tool handlers need.
type BrandTools struct {
	Engine *synth.Engine
	Logger *zap.Logger
}

// --- Input types ---

type BrandNamesInput struct {
	Industry       string `json:"industry" jsonschema:"Industry the brand operates in, e.g. tech or food"`
	Keywords       string `json:"keywords,omitempty" jsonschema:"Comma-separated keywords to blend into names"`
	TargetAudience string `json:"target_audience,omitempty" jsonschema:"Who the brand is for"`
	Tone           string `json:"tone,omitempty" jsonschema:"professional, playful, modern or bold"`
}

type LogosInput struct {
	BrandName      string `json:"brand_name" jsonschema:"Brand name shown on the logo"`
	Style          string `json:"style,omitempty" jsonschema:"minimal, modern, vintage or tech"`
	PrimaryColor   string `json:"primary_color,omitempty" jsonschema:"Primary color as hex, e.g. #000000"`
	SecondaryColor string `json:"secondary_color,omitempty" jsonschema:"Secondary color as hex"`
}

type IdentityInput struct {
	BrandName      string `json:"brand_name" jsonschema:"Brand name"`
	Industry       string `json:"industry,omitempty" jsonschema:"Industry the brand operates in"`
	TargetAudience string `json:"target_audience,omitempty" jsonschema:"Who the brand is for"`
}

type ContentInput struct {
	BrandName   string `json:"brand_name" jsonschema:"Brand name"`
	ContentType string `json:"content_type,omitempty" jsonschema:"social_post, ad_copy, blog or email"`
	Tone        string `json:"tone,omitempty" jsonschema:"Desired tone"`
	Keywords    string `json:"keywords,omitempty" jsonschema:"Comma-separated SEO keywords"`
	Length      string `json:"length,omitempty" jsonschema:"short, medium or long"`
}

type SentimentInput struct {
	Text string `json:"text" jsonschema:"Text to analyze"`
}

type ChatInput struct {
	Message string `json:"message" jsonschema:"Message for the branding assistant"`
	Context string `json:"context,omitempty" jsonschema:"Optional conversation context"`
}

// --- Handlers ---

func (t *BrandTools) GenerateBrandNames(_ context.Context, _ *mcp.CallToolRequest, input BrandNamesInput) (*mcp.CallToolResult, any, error) {
	req := types.BrandNameRequest(input)
	if err := req.Validate(); err != nil {
		return toolError("Invalid input: %v", err), nil, nil
	}

	return t.toolJSON("generate_brand_names", types.BrandNameResponse{
		BrandNames: t.Engine.BrandNames(req.Industry, req.Keywords, req.TargetAudience, req.Tone),
		Industry:   req.Industry,
		Tone:       req.Tone,
	})
}

func (t *BrandTools) GenerateLogos(_ context.Context, _ *mcp.CallToolRequest, input LogosInput) (*mcp.CallToolResult, any, error) {
	req := types.LogoRequest(input)
	if err := req.Validate(); err != nil {
		return toolError("Invalid input: %v", err), nil, nil
	}

	return t.toolJSON("generate_logos", types.LogoResponse{
		Logos:     t.Engine.Logos(req.BrandName, req.Style, req.PrimaryColor, req.SecondaryColor),
		BrandName: req.BrandName,
		Style:     req.Style,
	})
}

func (t *BrandTools) GenerateBrandIdentity(_ context.Context, _ *mcp.CallToolRequest, input IdentityInput) (*mcp.CallToolResult, any, error) {
	req := types.IdentityRequest(input)
	if err := req.Validate(); err != nil {
		return toolError("Invalid input: %v", err), nil, nil
	}

	return t.toolJSON("generate_brand_identity", t.Engine.Identity(req.BrandName, req.Industry, req.TargetAudience))
}

func (t *BrandTools) GenerateContent(_ context.Context, _ *mcp.CallToolRequest, input ContentInput) (*mcp.CallToolResult, any, error) {
	req := types.ContentRequest{
		BrandName:   input.BrandName,
		ContentType: input.ContentType,
		Tone:        input.Tone,
		Keywords:    input.Keywords,
		Length:      input.Length,
	}
	if err := req.Validate(); err != nil {
		return toolError("Invalid input: %v", err), nil, nil
	}
	req.Normalize()

	return t.toolJSON("generate_content", t.Engine.Content(req.BrandName, req.ContentType, req.Tone, req.Keywords, req.Length))
}

func (t *BrandTools) AnalyzeSentiment(_ context.Context, _ *mcp.CallToolRequest, input SentimentInput) (*mcp.CallToolResult, any, error) {
	req := types.SentimentRequest{Text: input.Text}
	if err := req.Validate(); err != nil {
		return toolError("Invalid input: %v", err), nil, nil
	}

	return t.toolJSON("analyze_sentiment", t.Engine.Sentiment(req.Text))
}

func (t *BrandTools) Chat(_ context.Context, _ *mcp.CallToolRequest, input ChatInput) (*mcp.CallToolResult, any, error) {
	req := types.ChatRequest(input)
	if err := req.Validate(); err != nil {
		return toolError("Invalid input: %v", err), nil, nil
	}

	return t.toolJSON("chat", t.Engine.Chat(req.Message, req.Context))
}

// --- Helpers ---

func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func (t *BrandTools) toolJSON(tool string, v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	t.Logger.Debug("Tool call", zap.String("tool", tool), zap.Int("bytes", len(data)))
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
