package domain

// RawRecord is one image's metadata as scraped from a Civitai collection.
// The flat generation fields mirror the export format.
type RawRecord struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username,omitempty"`
	BaseModel      string    `json:"baseModel,omitempty"`
	PositivePrompt string    `json:"positivePrompt"`
	NegativePrompt string    `json:"negativePrompt,omitempty"`
	Checkpoint     string    `json:"checkpoint,omitempty"`
	Loras          []LoraRef `json:"loras,omitempty"`
	Sampler        string    `json:"sampler,omitempty"`
	Steps          int       `json:"steps,omitempty"`
	CFGScale       float64   `json:"cfgScale,omitempty"`
	Seed           int64     `json:"seed,omitempty"`
	Width          int       `json:"width,omitempty"`
	Height         int       `json:"height,omitempty"`
}

// LoraRef is a LoRA attached to a generation, with its strength.
type LoraRef struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Settings are the generation parameters carried into the dataset.
type Settings struct {
	Sampler  string  `json:"sampler,omitempty"`
	Steps    int     `json:"steps,omitempty"`
	CFGScale float64 `json:"cfgScale,omitempty"`
	Seed     int64   `json:"seed,omitempty"`
	Width    int     `json:"width,omitempty"`
	Height   int     `json:"height,omitempty"`
}

// CategorizedRecord is a RawRecord plus its taxonomy matches.
//
// Categories maps category name to the keywords matched in the prompt, in
// taxonomy scan order with duplicates removed. Categories with no matches
// are omitted from the map entirely, never stored as empty slices.
// Exclusions is the same over the negative prompt.
type CategorizedRecord struct {
	ID         int64               `json:"id"`
	Username   string              `json:"username,omitempty"`
	BaseModel  string              `json:"baseModel,omitempty"`
	Checkpoint string              `json:"checkpoint,omitempty"`
	Prompt     string              `json:"prompt"`
	Negative   string              `json:"negative,omitempty"`
	Categories map[string][]string `json:"categories,omitempty"`
	Exclusions map[string][]string `json:"exclusions,omitempty"`
	Loras      []LoraRef           `json:"loras,omitempty"`
	Settings   Settings            `json:"settings"`
}
