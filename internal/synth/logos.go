package synth

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"

	"github.com/jonathan/brandcraft/internal/catalog"
)

const (
	logoCount = 4
	seedLen   = 8
)

// LogoDescriptor describes one placeholder logo variation.
type LogoDescriptor struct {
	ID    int    `json:"id"`
	URL   string `json:"url"`
	Style string `json:"style"`
	Label string `json:"label"`
}

// Logos returns four placeholder logo descriptors with IDs 1 through 4.
//
// Leading '#' characters are stripped from both colors. Each URL carries a short seed
// derived from the brand name, style and variation index; it only keeps the URLs
// distinct and carries no integrity meaning. Output is fully determined by the inputs.
func (e *Engine) Logos(brandName, style, primaryColor, secondaryColor string) []LogoDescriptor {
	label, ok := e.cat.Logos.Labels[style]
	if !ok {
		label = e.cat.Logos.DefaultLabel
	}
	primary := url.PathEscape(strings.TrimLeft(primaryColor, "#"))
	secondary := url.PathEscape(strings.TrimLeft(secondaryColor, "#"))

	logos := make([]LogoDescriptor, 0, logoCount)
	for i := 0; i < logoCount; i++ {
		index := strconv.Itoa(i + 1)
		data := map[string]string{
			"Primary":   primary,
			"Secondary": secondary,
			"BrandName": url.QueryEscape(brandName),
			"Label":     label,
			"Index":     index,
			"Seed":      logoSeed(brandName, style, i),
		}
		logos = append(logos, LogoDescriptor{
			ID:    i + 1,
			URL:   catalog.Format(e.cat.Logos.URL, data),
			Style: label,
			Label: catalog.Format(e.cat.Logos.Label, data),
		})
	}
	return logos
}

func logoSeed(brandName, style string, i int) string {
	sum := md5.Sum([]byte(brandName + style + strconv.Itoa(i)))
	return hex.EncodeToString(sum[:])[:seedLen]
}
