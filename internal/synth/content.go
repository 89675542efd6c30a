package synth

import (
	"strings"

	"github.com/jonathan/brandcraft/internal/catalog"
)

// Content types with a dedicated template.
const (
	ContentSocialPost = "social_post"
	ContentAdCopy     = "ad_copy"
	ContentBlog       = "blog"
	ContentEmail      = "email"
)

// ContentPiece is a generated piece of marketing copy.
type ContentPiece struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	SEOKeywords []string `json:"seo_keywords"`
}

// Content renders the template for contentType, falling back to the social post template
// for unknown types. tone and length are accepted but currently do not change the output.
// Non-empty keywords appear only in the social post.
func (e *Engine) Content(brandName, contentType, tone, keywords, length string) ContentPiece {
	tpl, ok := e.cat.Content.Templates[contentType]
	if !ok {
		tpl = e.cat.Content.Templates[e.cat.Content.DefaultType]
	}

	keywordLine := ""
	if keywords != "" {
		keywordLine = "🔑 " + keywords
	}
	data := map[string]string{
		"BrandName":   brandName,
		"KeywordLine": keywordLine,
		"Hashtag":     strings.ReplaceAll(brandName, " ", ""),
	}

	seo := make([]string, len(tpl.SEOKeywords))
	for i, kw := range tpl.SEOKeywords {
		seo[i] = catalog.Format(kw, data)
	}

	return ContentPiece{
		Title:       catalog.Format(tpl.Title, data),
		Content:     catalog.Format(tpl.Content, data),
		SEOKeywords: seo,
	}
}
