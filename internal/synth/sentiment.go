package synth

import (
	"slices"
	"strings"
)

// sampleBand is the pair of ranges positive and negative percentages are drawn from.
type sampleBand struct {
	posLo, posHi float64
	negLo, negHi float64
}

var (
	positiveBand = sampleBand{posLo: 55, posHi: 80, negLo: 5, negHi: 15}
	negativeBand = sampleBand{posLo: 10, posHi: 25, negLo: 50, negHi: 75}
	mixedBand    = sampleBand{posLo: 30, posHi: 45, negLo: 20, negHi: 35}
)

const (
	// damageThreshold is the negative share above which damage-control advice is given.
	damageThreshold = 30.0
	// amplifyThreshold is the positive share above which amplification advice is given.
	amplifyThreshold = 60.0
)

// SentimentResult is the outcome of a sentiment analysis. Positive, Neutral and Negative
// are percentages summing to 100; Neutral is derived from the other two.
type SentimentResult struct {
	Positive             float64  `json:"positive"`
	Neutral              float64  `json:"neutral"`
	Negative             float64  `json:"negative"`
	BrandPerceptionScore float64  `json:"brand_perception_score"`
	Suggestions          []string `json:"suggestions"`
}

// Sentiment scores text by counting exact, lower-cased whitespace tokens found in the
// positive and negative vocabularies, then samples a percentage split from the band the
// comparison selects. Ties, including text with no sentiment words, use the mixed band.
func (e *Engine) Sentiment(text string) SentimentResult {
	posCount, negCount := e.countSentimentWords(text)

	band := mixedBand
	switch {
	case posCount > negCount:
		band = positiveBand
	case negCount > posCount:
		band = negativeBand
	}

	positive := round1(e.uniform(band.posLo, band.posHi))
	negative := round1(e.uniform(band.negLo, band.negHi))
	neutral := round1(100 - positive - negative)

	return SentimentResult{
		Positive:             positive,
		Neutral:              neutral,
		Negative:             negative,
		BrandPerceptionScore: perceptionScore(positive, neutral, negative),
		Suggestions:          e.sentimentSuggestions(positive, negative),
	}
}

func (e *Engine) countSentimentWords(text string) (pos, neg int) {
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if _, ok := e.positive[w]; ok {
			pos++
		}
		if _, ok := e.negative[w]; ok {
			neg++
		}
	}
	return pos, neg
}

// perceptionScore weights positive fully, neutral half and negative not at all, on a 0-10 scale.
func perceptionScore(positive, neutral, negative float64) float64 {
	return round1((positive*1.0 + neutral*0.5 + negative*0.0) / 100 * 10)
}

func (e *Engine) sentimentSuggestions(positive, negative float64) []string {
	s := e.cat.Sentiment.Suggestions
	switch {
	case negative > damageThreshold:
		return slices.Clone(s.DamageControl)
	case positive > amplifyThreshold:
		return slices.Clone(s.Amplify)
	default:
		return slices.Clone(s.Growth)
	}
}
