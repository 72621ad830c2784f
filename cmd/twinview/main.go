package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cis2042/Twin3-algo/internal/monitoring"
	"github.com/cis2042/Twin3-algo/internal/registry"
	"github.com/cis2042/Twin3-algo/internal/smoothing"
	"github.com/cis2042/Twin3-algo/internal/view"
)

func main() {
	logger := monitoring.NewLogger()

	// Configuration from environment with defaults
	registryPath := os.Getenv("REGISTRY_PATH")
	scoresPath := getEnvOrDefault("SCORES_PATH", "./scores.json")
	category := getEnvOrDefault("CATEGORY", view.CategoryAll)
	mode := view.Mode(getEnvOrDefault("MODE", string(view.ModeRanked)))
	explainCode := os.Getenv("EXPLAIN")

	reg, source, err := loadRegistry(registryPath)
	if err != nil {
		logger.Error("Failed to load registry", "path", registryPath, "error", err)
		os.Exit(1)
	}
	logger.RegistryLogger(source, len(reg.Categories()), reg.NameCount())

	scores, err := loadScores(scoresPath)
	if err != nil {
		logger.Error("Failed to load score map", "path", scoresPath, "error", err)
		os.Exit(1)
	}

	snap, err := view.NewSnapshot(scores, view.StateIdle)
	if err != nil {
		logger.Error("Upstream score map rejected", "error", err)
		os.Exit(1)
	}

	engine := view.NewEngine(reg)
	start := time.Now()
	model := engine.Build(snap, category, mode)
	logger.ViewLogger(model.SnapshotID.String(), category, string(mode), len(model.Dimensions), time.Since(start))

	printModel(model)

	if explainCode != "" {
		score, ok := snap.Scores[explainCode]
		if !ok {
			logger.Warn("No score for requested code", "code", explainCode)
			os.Exit(1)
		}
		start = time.Now()
		trace := smoothing.Explain(score)
		logger.ExplainLogger(explainCode, trace.FinalScore, trace.RawScore, time.Since(start))
		printTrace(reg.DisplayName(explainCode), trace)
	}
}

func loadRegistry(path string) (*registry.Registry, string, error) {
	if path == "" {
		return registry.Default(), "builtin", nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, path, err
	}
	defer file.Close()

	reg, err := registry.Load(file)
	return reg, path, err
}

func loadScores(path string) (view.ScoreMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scores view.ScoreMap
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

func printModel(model view.Model) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tCATEGORY\tSCORE\tTIER\tPCT")
	for _, d := range model.Dimensions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d%%\n",
			d.Code, d.Name, d.CategoryKey, d.Score, d.TierTag, d.Percentage)
	}
	w.Flush()

	if model.HasData {
		fmt.Printf("\n%d dimensions, max %d, average %d\n",
			model.Stats.Count, model.Stats.Max, model.Stats.Average)
	} else {
		fmt.Println("\nno data")
	}
	if model.Updating {
		fmt.Println("upstream scorer is currently updating")
	}
}

func printTrace(name string, trace smoothing.Trace) {
	fmt.Printf("\nHow %q reached %d (explanatory estimate):\n", name, trace.FinalScore)
	for i, step := range trace.Steps {
		fmt.Printf("  %d. %s: %s (confidence %.2f)\n", i+1, step.Description, step.Result, step.Confidence)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
