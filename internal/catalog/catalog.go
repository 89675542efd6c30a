// Package catalog loads the static data tables used by the generation engine.
// The tables live in an embedded YAML file and are checked against an embedded
// JSON Schema before use.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/jonathan/brandcraft/internal/schemas"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

//go:embed catalog.schema.json
var catalogSchema []byte

// Catalog is the decoded form of catalog.yaml.
type Catalog struct {
	Names     NameTables      `yaml:"names"`
	Logos     LogoTables      `yaml:"logos"`
	Identity  IdentityTables  `yaml:"identity"`
	Content   ContentTables   `yaml:"content"`
	Sentiment SentimentTables `yaml:"sentiment"`
	Chat      ChatTables      `yaml:"chat"`
}

// NameTables holds tone word lists and name suffixes.
type NameTables struct {
	DefaultTone string              `yaml:"default_tone"`
	Tones       map[string][]string `yaml:"tones"`
	Suffixes    []string            `yaml:"suffixes"`
}

// LogoTables holds style labels and the placeholder URL/label templates.
type LogoTables struct {
	DefaultLabel string            `yaml:"default_label"`
	Labels       map[string]string `yaml:"labels"`
	URL          string            `yaml:"url"`
	Label        string            `yaml:"label"`
}

// IdentityTables holds the narrative templates and the fixed core values.
type IdentityTables struct {
	Mission    string   `yaml:"mission"`
	Vision     string   `yaml:"vision"`
	Tagline    string   `yaml:"tagline"`
	BrandStory string   `yaml:"brand_story"`
	CoreValues []string `yaml:"core_values"`
}

// ContentTemplate is one marketing content template.
type ContentTemplate struct {
	Title       string   `yaml:"title"`
	Content     string   `yaml:"content"`
	SEOKeywords []string `yaml:"seo_keywords"`
}

// ContentTables maps content types to templates.
type ContentTables struct {
	DefaultType string                     `yaml:"default_type"`
	Templates   map[string]ContentTemplate `yaml:"templates"`
}

// SentimentTables holds the scoring vocabularies and suggestion lists.
type SentimentTables struct {
	PositiveWords []string            `yaml:"positive_words"`
	NegativeWords []string            `yaml:"negative_words"`
	Suggestions   SentimentSuggestion `yaml:"suggestions"`
}

// SentimentSuggestion holds the three threshold-selected suggestion lists.
type SentimentSuggestion struct {
	DamageControl []string `yaml:"damage_control"`
	Amplify       []string `yaml:"amplify"`
	Growth        []string `yaml:"growth"`
}

// ChatReply is a canned consultant answer. Keywords is empty for the fallback.
type ChatReply struct {
	Name        string   `yaml:"name"`
	Keywords    []string `yaml:"keywords"`
	Response    string   `yaml:"response"`
	Suggestions []string `yaml:"suggestions"`
}

// ChatTables holds the ordered intents and the fallback reply.
type ChatTables struct {
	Intents  []ChatReply `yaml:"intents"`
	Fallback ChatReply   `yaml:"fallback"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, parsing and validating it on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(catalogYAML)
	})
	return defaultCatalog, defaultErr
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if err := schemas.ValidateDocument("catalog.schema.json", catalogSchema, doc); err != nil {
		return nil, fmt.Errorf("catalog does not match schema: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return &c, nil
}

// check covers the cross-references a JSON Schema cannot express.
func (c *Catalog) check() error {
	if _, ok := c.Names.Tones[c.Names.DefaultTone]; !ok {
		return fmt.Errorf("catalog: default tone %q has no word list", c.Names.DefaultTone)
	}
	if _, ok := c.Content.Templates[c.Content.DefaultType]; !ok {
		return fmt.Errorf("catalog: default content type %q has no template", c.Content.DefaultType)
	}
	return nil
}

// Format replaces {{.Key}} placeholders in template with values from data in a single pass,
// so substituted values are never themselves expanded.
func Format(template string, data map[string]string) string {
	pairs := make([]string, 0, len(data)*2)
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
