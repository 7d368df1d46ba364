package dataset

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"sort"
	"strings"

	"promptatlas/internal/domain"
	"promptatlas/internal/platform/apierr"
	"promptatlas/internal/platform/logger"
)

// Query selects a subset of categorized records. Filters use AND semantics
// across categories and OR semantics within a category's keyword list.
type Query struct {
	Filters   map[string][]string `json:"filters"`
	BaseModel string              `json:"base_model"`
	Search    string              `json:"search"`
}

// TechSummary holds the aggregate generation settings of a filtered set.
type TechSummary struct {
	Count         int     `json:"count"`
	MeanSteps     float64 `json:"mean_steps"`
	MeanCFG       float64 `json:"mean_cfg"`
	CommonSampler string  `json:"most_common_sampler"`
}

// Store holds the dataset read-only for the process lifetime. A store
// loaded from a missing or corrupt file is empty but usable: every query
// answers over zero records and Available reports false.
type Store struct {
	log  *logger.Logger
	data *domain.Dataset
}

// Load reads the dataset file. Load never fails: on any read or decode
// error it logs a warning and returns an empty store so the server can
// come up in a degraded no-data state.
func Load(path string, log *logger.Logger) *Store {
	s := &Store{log: log.With("component", "dataset")}

	raw, err := os.ReadFile(path)
	if err != nil {
		s.log.Warn("dataset file unavailable, serving empty state",
			"path", path, "error", err)
		return s
	}
	var ds domain.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		s.log.Warn("dataset file corrupt, serving empty state",
			"path", path, "error", err)
		return s
	}
	s.data = &ds
	s.log.Info("dataset loaded",
		"path", path,
		"total_images", ds.Metadata.TotalImages,
		"with_prompts", ds.Metadata.WithPrompts)
	return s
}

// NewFromDataset wraps an already-built dataset. Used by tests.
func NewFromDataset(ds *domain.Dataset, log *logger.Logger) *Store {
	return &Store{log: log.With("component", "dataset"), data: ds}
}

func (s *Store) Available() bool { return s.data != nil }

func (s *Store) Metadata() domain.Metadata {
	if s.data == nil {
		return domain.Metadata{}
	}
	return s.data.Metadata
}

func (s *Store) LoraAnalysis() domain.LoraStats {
	if s.data == nil {
		return domain.LoraStats{}
	}
	return s.data.LoraAnalysis
}

func (s *Store) TechnicalSettings() domain.TechnicalStats {
	if s.data == nil {
		return domain.TechnicalStats{}
	}
	return s.data.TechnicalSettings
}

// CategoryValues returns, per category, the sorted unique keywords present
// anywhere in the loaded records. It drives the filter form.
func (s *Store) CategoryValues() map[string][]string {
	out := map[string][]string{}
	if s.data == nil {
		return out
	}
	uniq := map[string]map[string]bool{}
	for _, rec := range s.data.CategorizedImages {
		for cat, kws := range rec.Categories {
			if uniq[cat] == nil {
				uniq[cat] = map[string]bool{}
			}
			for _, kw := range kws {
				uniq[cat][kw] = true
			}
		}
	}
	for cat, set := range uniq {
		vals := make([]string, 0, len(set))
		for kw := range set {
			vals = append(vals, kw)
		}
		sort.Strings(vals)
		out[cat] = vals
	}
	return out
}

// BaseModels returns the sorted unique base models present in the dataset.
func (s *Store) BaseModels() []string {
	if s.data == nil {
		return nil
	}
	set := map[string]bool{}
	for _, rec := range s.data.CategorizedImages {
		if rec.BaseModel != "" {
			set[rec.BaseModel] = true
		}
	}
	out := make([]string, 0, len(set))
	for bm := range set {
		out = append(out, bm)
	}
	sort.Strings(out)
	return out
}

// Get returns the record with the given id.
func (s *Store) Get(id int64) (domain.CategorizedRecord, error) {
	if s.data != nil {
		for _, rec := range s.data.CategorizedImages {
			if rec.ID == id {
				return rec, nil
			}
		}
	}
	return domain.CategorizedRecord{}, apierr.New(
		http.StatusNotFound, "record_not_found",
		fmt.Errorf("no record with id %d", id))
}

// Filter returns the records matching the query, in dataset order.
func (s *Store) Filter(q Query) []domain.CategorizedRecord {
	if s.data == nil {
		return nil
	}
	var out []domain.CategorizedRecord
	for _, rec := range s.data.CategorizedImages {
		if matches(rec, q) {
			out = append(out, rec)
		}
	}
	return out
}

// Sample draws one record uniformly from the filtered set. The second
// return is false when the set is empty.
func (s *Store) Sample(q Query) (domain.CategorizedRecord, bool) {
	set := s.Filter(q)
	if len(set) == 0 {
		return domain.CategorizedRecord{}, false
	}
	return set[rand.IntN(len(set))], true
}

// TechSummary aggregates generation settings over the filtered set.
func (s *Store) TechSummary(q Query) TechSummary {
	return Summarize(s.Filter(q))
}

// Summarize aggregates generation settings over an already-filtered set.
// Records with zero steps or cfg are excluded from the respective mean.
func Summarize(set []domain.CategorizedRecord) TechSummary {
	sum := TechSummary{Count: len(set)}

	var stepSum, stepN int
	var cfgSum float64
	var cfgN int
	samplers := map[string]int{}
	samplerOrder := []string{}
	for _, rec := range set {
		if rec.Settings.Steps > 0 {
			stepSum += rec.Settings.Steps
			stepN++
		}
		if rec.Settings.CFGScale > 0 {
			cfgSum += rec.Settings.CFGScale
			cfgN++
		}
		if rec.Settings.Sampler != "" {
			if _, ok := samplers[rec.Settings.Sampler]; !ok {
				samplerOrder = append(samplerOrder, rec.Settings.Sampler)
			}
			samplers[rec.Settings.Sampler]++
		}
	}
	if stepN > 0 {
		sum.MeanSteps = float64(stepSum) / float64(stepN)
	}
	if cfgN > 0 {
		sum.MeanCFG = cfgSum / float64(cfgN)
	}
	best := -1
	for _, name := range samplerOrder {
		if samplers[name] > best {
			best = samplers[name]
			sum.CommonSampler = name
		}
	}
	return sum
}

func matches(rec domain.CategorizedRecord, q Query) bool {
	if q.BaseModel != "" && rec.BaseModel != q.BaseModel {
		return false
	}
	if q.Search != "" &&
		!strings.Contains(strings.ToLower(rec.Prompt), strings.ToLower(q.Search)) {
		return false
	}
	for cat, wanted := range q.Filters {
		if len(wanted) == 0 {
			continue
		}
		have := rec.Categories[cat]
		if len(have) == 0 {
			return false
		}
		set := make(map[string]bool, len(have))
		for _, kw := range have {
			set[strings.ToLower(kw)] = true
		}
		any := false
		for _, kw := range wanted {
			if set[strings.ToLower(kw)] {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	return true
}
