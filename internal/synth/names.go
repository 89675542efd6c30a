package synth

const (
	// nameCount is the size of every generated name set.
	nameCount = 10
	// keywordBand is the number of leading names built from keyword + suffix.
	keywordBand = 3
	// prefixBand ends the names built from a positional tone word + suffix.
	prefixBand = 6
	// industryStemLen is how much of the industry is used when no keywords exist.
	industryStemLen = 4
)

// BrandNames returns exactly 10 candidate brand names.
//
// Names 0-2 pair a random keyword with a random suffix (or follow the 3-5 rule when no
// keywords were given), names 3-5 pair the tone word at that position with a random
// suffix, and names 6-9 pair a random tone word with a random keyword or, without
// keywords, the first four letters of the capitalized industry. An unknown tone uses
// the catalog's default tone. targetAudience does not influence the result.
func (e *Engine) BrandNames(industry, keywords, targetAudience, tone string) []string {
	keywordList := splitKeywords(keywords)
	words := e.toneWords(tone)
	suffixes := e.cat.Names.Suffixes

	names := make([]string, 0, nameCount)
	for i := 0; i < nameCount; i++ {
		switch {
		case i < keywordBand && len(keywordList) > 0:
			kw := e.pick(keywordList)
			names = append(names, kw+e.pick(suffixes))
		case i < prefixBand:
			names = append(names, words[i%len(words)]+e.pick(suffixes))
		default:
			prefix := e.pick(words)
			tail := firstRunes(capitalize(industry), industryStemLen)
			if len(keywordList) > 0 {
				tail = e.pick(keywordList)
			}
			names = append(names, prefix+tail)
		}
	}
	return names
}

func (e *Engine) toneWords(tone string) []string {
	if words, ok := e.cat.Names.Tones[tone]; ok {
		return words
	}
	return e.cat.Names.Tones[e.cat.Names.DefaultTone]
}
