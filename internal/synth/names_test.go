package synth

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasSuffixFrom(name, prefix string, suffixes []string) bool {
	if !strings.HasPrefix(name, prefix) {
		return false
	}
	return slices.Contains(suffixes, strings.TrimPrefix(name, prefix))
}

func TestBrandNames_AlwaysTen(t *testing.T) {
	e := newSeededEngine(t, 1)

	inputs := []struct {
		industry, keywords, audience, tone string
	}{
		{"bakery", "bread, cake", "families", "playful"},
		{"bakery", "", "families", "playful"},
		{"", "", "", ""},
		{"fintech", " , , ", "banks", "unknown-tone"},
	}
	for _, in := range inputs {
		names := e.BrandNames(in.industry, in.keywords, in.audience, in.tone)
		require.Len(t, names, 10, "input %+v", in)
		for i, n := range names {
			assert.NotEmpty(t, n, "name %d for input %+v", i, in)
		}
	}
}

func TestBrandNames_NoKeywords(t *testing.T) {
	e := newSeededEngine(t, 2)
	words := e.cat.Names.Tones["professional"]
	suffixes := e.cat.Names.Suffixes

	names := e.BrandNames("bakery", "", "families", "professional")
	require.Len(t, names, 10)

	// Without keywords the first six names are positional tone word + suffix.
	for i := 0; i < 6; i++ {
		assert.True(t, hasSuffixFrom(names[i], words[i], suffixes), "name %d = %q", i, names[i])
	}
	// The rest end with the industry stem.
	for i := 6; i < 10; i++ {
		assert.True(t, strings.HasSuffix(names[i], "Bake"), "name %d = %q", i, names[i])
		assert.True(t, slices.Contains(words, strings.TrimSuffix(names[i], "Bake")), "name %d = %q", i, names[i])
	}
}

func TestBrandNames_WithKeywords(t *testing.T) {
	e := newSeededEngine(t, 3)
	words := e.cat.Names.Tones["bold"]
	suffixes := e.cat.Names.Suffixes

	names := e.BrandNames("fitness", " iron , FLEX", "athletes", "bold")
	require.Len(t, names, 10)

	for i := 0; i < 3; i++ {
		ok := hasSuffixFrom(names[i], "Iron", suffixes) || hasSuffixFrom(names[i], "Flex", suffixes)
		assert.True(t, ok, "name %d = %q", i, names[i])
	}
	for i := 3; i < 6; i++ {
		assert.True(t, hasSuffixFrom(names[i], words[i], suffixes), "name %d = %q", i, names[i])
	}
	for i := 6; i < 10; i++ {
		ok := strings.HasSuffix(names[i], "Iron") || strings.HasSuffix(names[i], "Flex")
		assert.True(t, ok, "name %d = %q", i, names[i])
		assert.NotContains(t, names[i], "Fitn")
	}
}

func TestBrandNames_UnknownToneUsesModern(t *testing.T) {
	e := newSeededEngine(t, 4)
	modern := e.cat.Names.Tones["modern"]

	names := e.BrandNames("travel", "", "nomads", "grunge")
	for i := 3; i < 6; i++ {
		assert.True(t, strings.HasPrefix(names[i], modern[i]), "name %d = %q", i, names[i])
	}
}

func TestBrandNames_SeededIsReproducible(t *testing.T) {
	a := newSeededEngine(t, 42).BrandNames("coffee", "bean, roast", "students", "playful")
	b := newSeededEngine(t, 42).BrandNames("coffee", "bean, roast", "students", "playful")
	assert.Equal(t, a, b)
}

func TestBrandNames_StubRandPicksFirst(t *testing.T) {
	e := MustNew(WithRand(stubRand{}))

	names := e.BrandNames("bakery", "crumb", "families", "modern")
	assert.Equal(t, []string{
		"CrumbLabs", "CrumbLabs", "CrumbLabs",
		"AuraLabs", "GridLabs", "SyncLabs",
		"NexusCrumb", "NexusCrumb", "NexusCrumb", "NexusCrumb",
	}, names)
}
