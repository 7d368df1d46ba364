package promptgen

import (
	"math/rand/v2"
	"sort"
	"strings"
)

const (
	defaultCount    = 5
	maxCount        = 10
	qualityPerBuild = 3
)

// Request describes one prompt-build invocation. Selections maps category
// name to the terms the user picked; every selected term contributes one
// synonym variation to each generated positive prompt.
type Request struct {
	Selections     map[string][]string `json:"selections"`
	Count          int                 `json:"count"`
	IncludeQuality bool                `json:"include_quality"`
	QualityTags    []string            `json:"quality_tags"`
}

// Pair is one generated positive/negative prompt pair.
type Pair struct {
	Positive string `json:"positive"`
	Negative string `json:"negative"`
}

// Generator builds prompt variations from category selections.
type Generator struct {
	rng *rand.Rand
}

func New() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded fixes the random source. Used by tests.
func NewSeeded(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Generate returns Count prompt pairs. Count is clamped to [1, 10] with a
// default of 5, mirroring the interactive builder.
func (g *Generator) Generate(req Request) []Pair {
	count := req.Count
	if count <= 0 {
		count = defaultCount
	}
	if count > maxCount {
		count = maxCount
	}

	quality := req.QualityTags
	if len(quality) == 0 {
		quality = defaultQualityTags
	}

	// Category order must not depend on map iteration.
	cats := make([]string, 0, len(req.Selections))
	for cat := range req.Selections {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	pairs := make([]Pair, 0, count)
	for i := 0; i < count; i++ {
		var parts []string
		if req.IncludeQuality {
			parts = append(parts, g.sample(quality, qualityPerBuild)...)
		}
		for _, cat := range cats {
			for _, term := range req.Selections[cat] {
				parts = append(parts, g.vary(term))
			}
		}
		pairs = append(pairs, Pair{
			Positive: strings.Join(parts, ", "),
			Negative: g.negative(),
		})
	}
	return pairs
}

// vary picks a random phrasing of the term from the variation map, falling
// back to the term itself.
func (g *Generator) vary(term string) string {
	variants, ok := variationMap[strings.ToLower(strings.TrimSpace(term))]
	if !ok || len(variants) == 0 {
		return term
	}
	return variants[g.rng.IntN(len(variants))]
}

func (g *Generator) negative() string {
	extra := g.sample(commonNegatives, 2+g.rng.IntN(3))
	return defaultNegative + ", " + strings.Join(extra, ", ")
}

// sample draws n distinct elements, preserving none of the input order.
func (g *Generator) sample(pool []string, n int) []string {
	if n >= len(pool) {
		n = len(pool)
	}
	perm := g.rng.Perm(len(pool))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, pool[idx])
	}
	return out
}
