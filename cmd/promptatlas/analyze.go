package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptatlas/internal/analyzer"
	"promptatlas/internal/platform/envutil"
	"promptatlas/internal/platform/logger"
	"promptatlas/internal/taxonomy"
)

var (
	analyzeInput    string
	analyzeOutput   string
	analyzeTaxonomy string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Categorize raw metadata into the consolidated dataset",
	Long: `Reads a JSON array of raw image metadata records, matches prompts
against the category taxonomy, aggregates LoRA and sampler statistics, and
writes the consolidated dataset consumed by "promptatlas serve".`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "all-images-metadata.json", "raw metadata JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "data/dataset.json", "dataset output path")
	analyzeCmd.Flags().StringVarP(&analyzeTaxonomy, "taxonomy", "t",
		envutil.String("PROMPTATLAS_TAXONOMY", ""), "taxonomy YAML file (default: built-in)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	tax := taxonomy.Default()
	if analyzeTaxonomy != "" {
		tax, err = taxonomy.Load(analyzeTaxonomy)
		if err != nil {
			return err
		}
		log.Info("taxonomy loaded", "path", analyzeTaxonomy)
	}

	records, err := analyzer.LoadRecords(analyzeInput, log)
	if err != nil {
		return err
	}

	ds := analyzer.New(log, tax).Analyze(records)
	if err := analyzer.WriteDataset(analyzeOutput, ds); err != nil {
		return err
	}

	log.Info("analysis complete",
		"output", analyzeOutput,
		"total_images", ds.Metadata.TotalImages,
		"with_prompts", ds.Metadata.WithPrompts,
		"unique_loras", len(ds.LoraAnalysis.Counts),
		"samplers", len(ds.TechnicalSettings.Samplers))
	return nil
}
