package analyzer

import (
	"sort"
	"strings"

	"promptatlas/internal/domain"
	"promptatlas/internal/platform/logger"
	"promptatlas/internal/taxonomy"
)

const (
	maxLoraCounts   = 50
	maxCombinations = 20
	maxSamplers     = 20
)

// Analyzer turns raw metadata records into the consolidated dataset.
type Analyzer struct {
	log *logger.Logger
	tax taxonomy.Set
}

func New(log *logger.Logger, tax taxonomy.Set) *Analyzer {
	return &Analyzer{
		log: log.With("component", "analyzer"),
		tax: tax,
	}
}

// Analyze produces exactly one categorized record per input record with a
// non-empty prompt. Records without a prompt still count toward
// metadata.total_images and still feed the LoRA and technical aggregates.
// Duplicate ids are dropped so categorized_images ids stay unique.
func (a *Analyzer) Analyze(records []domain.RawRecord) *domain.Dataset {
	ds := &domain.Dataset{
		CategorizedImages: []domain.CategorizedRecord{},
	}

	seen := make(map[int64]bool, len(records))
	kept := make([]domain.RawRecord, 0, len(records))
	for _, rec := range records {
		if seen[rec.ID] {
			a.log.Warn("dropping duplicate record id", "id", rec.ID)
			continue
		}
		seen[rec.ID] = true
		kept = append(kept, rec)
	}

	for _, rec := range kept {
		if strings.TrimSpace(rec.PositivePrompt) == "" {
			continue
		}
		ds.CategorizedImages = append(ds.CategorizedImages, domain.CategorizedRecord{
			ID:         rec.ID,
			Username:   rec.Username,
			BaseModel:  rec.BaseModel,
			Checkpoint: rec.Checkpoint,
			Prompt:     rec.PositivePrompt,
			Negative:   rec.NegativePrompt,
			Categories: a.tax.Prompt.Match(rec.PositivePrompt),
			Exclusions: a.tax.Negative.Match(rec.NegativePrompt),
			Loras:      rec.Loras,
			Settings: domain.Settings{
				Sampler:  rec.Sampler,
				Steps:    rec.Steps,
				CFGScale: rec.CFGScale,
				Seed:     rec.Seed,
				Width:    rec.Width,
				Height:   rec.Height,
			},
		})
	}

	ds.Metadata = domain.Metadata{
		TotalImages: len(kept),
		WithPrompts: len(ds.CategorizedImages),
	}
	ds.LoraAnalysis = a.analyzeLoras(kept)
	ds.TechnicalSettings = analyzeTechnical(kept)
	return ds
}

func (a *Analyzer) analyzeLoras(records []domain.RawRecord) domain.LoraStats {
	counts := map[string]int{}
	countOrder := []string{}
	byBase := map[string]map[string]int{}
	weights := map[string][]float64{}

	comboCounts := map[string]int{}
	comboOrder := []string{}
	comboNames := map[string][]string{}

	for _, rec := range records {
		base := rec.BaseModel
		if base == "" {
			base = "Unknown"
		}
		var names []string
		for _, lora := range rec.Loras {
			name := strings.TrimSpace(lora.Name)
			if name == "" || name == "Unknown" {
				continue
			}
			if _, ok := counts[name]; !ok {
				countOrder = append(countOrder, name)
			}
			counts[name]++
			if byBase[base] == nil {
				byBase[base] = map[string]int{}
			}
			byBase[base][name]++
			weights[name] = append(weights[name], lora.Weight)
			names = append(names, name)
		}
		if len(names) > 1 {
			sort.Strings(names)
			key := strings.Join(names, "\x00")
			if _, ok := comboCounts[key]; !ok {
				comboOrder = append(comboOrder, key)
				comboNames[key] = names
			}
			comboCounts[key]++
		}
	}

	stats := domain.LoraStats{
		Counts:          topCounts(counts, countOrder, maxLoraCounts),
		AvgWeights:      map[string]float64{},
		ByBase:          byBase,
		TopCombinations: []domain.LoraCombo{},
	}
	for name, ws := range weights {
		var sum float64
		for _, w := range ws {
			sum += w
		}
		stats.AvgWeights[name] = sum / float64(len(ws))
	}

	// Rank combinations by count desc, ties by first-seen order.
	firstSeen := map[string]int{}
	for i, key := range comboOrder {
		firstSeen[key] = i
	}
	ranked := append([]string(nil), comboOrder...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if comboCounts[ranked[i]] != comboCounts[ranked[j]] {
			return comboCounts[ranked[i]] > comboCounts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})
	if len(ranked) > maxCombinations {
		ranked = ranked[:maxCombinations]
	}
	for _, key := range ranked {
		stats.TopCombinations = append(stats.TopCombinations, domain.LoraCombo{
			Names: comboNames[key],
			Count: comboCounts[key],
		})
	}
	return stats
}

func analyzeTechnical(records []domain.RawRecord) domain.TechnicalStats {
	samplers := map[string]int{}
	samplerOrder := []string{}
	var steps []int
	var cfgs []float64

	for _, rec := range records {
		if rec.Sampler != "" {
			if _, ok := samplers[rec.Sampler]; !ok {
				samplerOrder = append(samplerOrder, rec.Sampler)
			}
			samplers[rec.Sampler]++
		}
		if rec.Steps > 0 {
			steps = append(steps, rec.Steps)
		}
		if rec.CFGScale > 0 {
			cfgs = append(cfgs, rec.CFGScale)
		}
	}

	out := domain.TechnicalStats{
		Samplers: topCounts(samplers, samplerOrder, maxSamplers),
	}
	if len(steps) > 0 {
		sum := 0
		out.StepsMin, out.StepsMax = steps[0], steps[0]
		for _, s := range steps {
			sum += s
			if s < out.StepsMin {
				out.StepsMin = s
			}
			if s > out.StepsMax {
				out.StepsMax = s
			}
		}
		out.StepsAvg = float64(sum) / float64(len(steps))
	}
	if len(cfgs) > 0 {
		var sum float64
		out.CFGMin, out.CFGMax = cfgs[0], cfgs[0]
		for _, c := range cfgs {
			sum += c
			if c < out.CFGMin {
				out.CFGMin = c
			}
			if c > out.CFGMax {
				out.CFGMax = c
			}
		}
		out.CFGAvg = sum / float64(len(cfgs))
	}
	return out
}

// topCounts keeps the n highest counts, ties broken by first-seen order.
func topCounts(counts map[string]int, order []string, n int) map[string]int {
	if len(counts) <= n {
		return counts
	}
	firstSeen := map[string]int{}
	for i, name := range order {
		firstSeen[name] = i
	}
	ranked := append([]string(nil), order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})
	out := make(map[string]int, n)
	for _, name := range ranked[:n] {
		out[name] = counts[name]
	}
	return out
}
