package domain

// Metadata summarizes an analyzer run.
type Metadata struct {
	TotalImages int `json:"total_images"`
	WithPrompts int `json:"with_prompts"`
}

// LoraCombo is a set of LoRA names used together in a single record.
// Names are sorted; Count is how many records used exactly that set.
type LoraCombo struct {
	Names []string `json:"names"`
	Count int      `json:"count"`
}

// LoraStats aggregates LoRA usage across the whole input.
type LoraStats struct {
	Counts          map[string]int            `json:"counts"`
	AvgWeights      map[string]float64        `json:"avg_weights"`
	ByBase          map[string]map[string]int `json:"by_base"`
	TopCombinations []LoraCombo               `json:"top_combinations"`
}

// TechnicalStats aggregates sampler/steps/cfg usage across the whole input.
type TechnicalStats struct {
	Samplers map[string]int `json:"samplers"`
	StepsAvg float64        `json:"steps_avg"`
	StepsMin int            `json:"steps_min"`
	StepsMax int            `json:"steps_max"`
	CFGAvg   float64        `json:"cfg_avg"`
	CFGMin   float64        `json:"cfg_min"`
	CFGMax   float64        `json:"cfg_max"`
}

// Dataset is the consolidated document produced by `promptatlas analyze`
// and consumed read-only by the serve process.
type Dataset struct {
	Metadata          Metadata            `json:"metadata"`
	CategorizedImages []CategorizedRecord `json:"categorized_images"`
	LoraAnalysis      LoraStats           `json:"lora_analysis"`
	TechnicalSettings TechnicalStats      `json:"technical_settings"`
}
