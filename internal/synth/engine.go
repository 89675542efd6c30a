// Package synth implements the mock branding generation engine: brand names, logo
// placeholders, identity copy, marketing content, sentiment scoring and canned
// consultant chat. Every operation is a pure, synchronous function of its inputs and
// the engine's random source; none of them returns an error.
package synth

import (
	"fmt"
	"math/rand/v2"

	"github.com/jonathan/brandcraft/internal/catalog"
)

// Rand is the subset of *rand.Rand the engine draws from. Inject a seeded
// rand.New(rand.NewPCG(a, b)) to make name and percentage sampling reproducible.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// globalRand uses the top-level math/rand/v2 functions, which are safe for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// Engine produces generated branding artifacts from the static catalog.
// It holds no mutable state of its own and is safe for concurrent use as long
// as its Rand is.
type Engine struct {
	cat      *catalog.Catalog
	rng      Rand
	positive map[string]struct{}
	negative map[string]struct{}
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for name picks and percentage sampling.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithCatalog replaces the embedded catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) {
		if c != nil {
			e.cat = c
		}
	}
}

// New creates an Engine backed by the embedded catalog unless WithCatalog is given.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{rng: globalRand{}}
	for _, opt := range opts {
		opt(e)
	}

	if e.cat == nil {
		c, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load generation catalog: %w", err)
		}
		e.cat = c
	}

	e.positive = wordSet(e.cat.Sentiment.PositiveWords)
	e.negative = wordSet(e.cat.Sentiment.NegativeWords)
	return e, nil
}

// MustNew is like New but panics if the catalog cannot be loaded.
func MustNew(opts ...Option) *Engine {
	e, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// pick returns a uniformly random element of items. items must be non-empty.
func (e *Engine) pick(items []string) string {
	return items[e.rng.IntN(len(items))]
}

// uniform draws from [lo, hi].
func (e *Engine) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*e.rng.Float64()
}

// BrandStrengthScore draws a new project's initial brand strength from [60, 95].
func (e *Engine) BrandStrengthScore() float64 {
	return round1(e.uniform(60, 95))
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
