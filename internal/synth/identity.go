package synth

import (
	"slices"
	"strings"

	"github.com/jonathan/brandcraft/internal/catalog"
)

// Identity is a generated brand identity bundle.
type Identity struct {
	Mission    string   `json:"mission"`
	Vision     string   `json:"vision"`
	CoreValues []string `json:"core_values"`
	Tagline    string   `json:"tagline"`
	BrandStory string   `json:"brand_story"`
}

// Identity fills the identity templates. It is deterministic; core values are the same
// five strings on every call.
func (e *Engine) Identity(brandName, industry, targetAudience string) Identity {
	t := e.cat.Identity
	data := map[string]string{
		"BrandName":     brandName,
		"Industry":      industry,
		"IndustryTitle": capitalize(industry),
		"Audience":      targetAudience,
		"AudienceLower": strings.ToLower(targetAudience),
	}

	return Identity{
		Mission:    catalog.Format(t.Mission, data),
		Vision:     catalog.Format(t.Vision, data),
		CoreValues: slices.Clone(t.CoreValues),
		Tagline:    catalog.Format(t.Tagline, data),
		BrandStory: catalog.Format(t.BrandStory, data),
	}
}
