package types

import (
	"github.com/google/uuid"

	"github.com/jonathan/brandcraft/internal/synth"
)

// DefaultContentLength is applied when a content request leaves length empty.
const DefaultContentLength = "medium"

// BrandNameRequest asks for brand name suggestions.
type BrandNameRequest struct {
	Industry       string `json:"industry" presence:"required" jsonschema:"Industry the brand operates in, e.g. tech or food"`
	Keywords       string `json:"keywords" presence:"required" jsonschema:"Comma-separated keywords to blend into names"`
	TargetAudience string `json:"target_audience" presence:"required" jsonschema:"Who the brand is for"`
	Tone           string `json:"tone" presence:"required" jsonschema:"professional, playful, modern or bold"`
}

// BrandNameResponse wraps generated names.
type BrandNameResponse struct {
	BrandNames []string `json:"brand_names"`
	Industry   string   `json:"industry"`
	Tone       string   `json:"tone"`
}

// LogoRequest asks for logo placeholders.
type LogoRequest struct {
	BrandName      string `json:"brand_name" presence:"required" jsonschema:"Brand name shown on the logo"`
	Style          string `json:"style" presence:"required" jsonschema:"minimal, modern, vintage or tech"`
	PrimaryColor   string `json:"primary_color" presence:"required" jsonschema:"Primary color as hex, e.g. #000000"`
	SecondaryColor string `json:"secondary_color" presence:"required" jsonschema:"Secondary color as hex"`
}

// LogoResponse wraps generated logos.
type LogoResponse struct {
	Logos     []synth.LogoDescriptor `json:"logos"`
	BrandName string                 `json:"brand_name"`
	Style     string                 `json:"style"`
}

// IdentityRequest asks for a brand identity kit.
type IdentityRequest struct {
	BrandName      string `json:"brand_name" presence:"required" jsonschema:"Brand name"`
	Industry       string `json:"industry" presence:"required" jsonschema:"Industry the brand operates in"`
	TargetAudience string `json:"target_audience" presence:"required" jsonschema:"Who the brand is for"`
}

// ContentRequest asks for a marketing content piece.
type ContentRequest struct {
	BrandName   string     `json:"brand_name" presence:"required" jsonschema:"Brand name"`
	ContentType string     `json:"content_type" presence:"required" jsonschema:"social_post, ad_copy, blog or email"`
	Tone        string     `json:"tone" presence:"required" jsonschema:"Desired tone"`
	Keywords    string     `json:"keywords,omitempty" jsonschema:"Comma-separated SEO keywords"`
	Length      string     `json:"length,omitempty" jsonschema:"short, medium or long"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty" jsonschema:"Project to attach the content to"`
}

// Normalize fills optional fields with their defaults.
func (r *ContentRequest) Normalize() {
	if r.Length == "" {
		r.Length = DefaultContentLength
	}
}

// SentimentRequest asks for a sentiment analysis of free text.
type SentimentRequest struct {
	Text      string     `json:"text" presence:"required" jsonschema:"Text to analyze"`
	ProjectID *uuid.UUID `json:"project_id,omitempty" jsonschema:"Project to attach the report to"`
}

// ChatRequest is one user message to the branding assistant.
type ChatRequest struct {
	Message string `json:"message" presence:"required" jsonschema:"Message for the branding assistant"`
	Context string `json:"context,omitempty" jsonschema:"Optional conversation context"`
}

// Validate validates the BrandNameRequest using the validator.
func (r *BrandNameRequest) Validate() error { return validate.Struct(r) }

// Validate validates the LogoRequest using the validator.
func (r *LogoRequest) Validate() error { return validate.Struct(r) }

// Validate validates the IdentityRequest using the validator.
func (r *IdentityRequest) Validate() error { return validate.Struct(r) }

// Validate validates the ContentRequest using the validator.
func (r *ContentRequest) Validate() error { return validate.Struct(r) }

// Validate validates the SentimentRequest using the validator.
func (r *SentimentRequest) Validate() error { return validate.Struct(r) }

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error { return validate.Struct(r) }
