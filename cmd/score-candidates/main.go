// Command score-candidates scores a slate of candidates from a YAML
// file and prints a ranked table. It is a thin consumer of the scoring
// engine; all business rules live in internal/scoring.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/votolimpio/puntaje/infrastructure/middleware"
	"github.com/votolimpio/puntaje/infrastructure/storage"
	"github.com/votolimpio/puntaje/internal/application"
	"github.com/votolimpio/puntaje/internal/scoring"
)

func main() {
	var (
		inputPath  = flag.String("input", "candidates.yaml", "YAML file with the candidate slate")
		configPath = flag.String("config", "", "Optional scoring configuration YAML")
		cargoFlag  = flag.String("cargo", "presidente", "Target cargo to score for")
		yearFlag   = flag.Int("year", time.Now().Year(), "Reference year for open-ended tenures")
		presetFlag = flag.String("preset", "balanced", "Composite preset to rank by")
	)
	flag.Parse()

	cfg, err := resolveConfig(*configPath, *cargoFlag, *yearFlag, *presetFlag)
	if err != nil {
		log.Fatalf("Failed to resolve configuration: %v", err)
	}

	source := storage.NewYAMLCandidateSource(*inputPath)
	candidates, err := source.Candidates(context.Background())
	if err != nil {
		log.Fatalf("Failed to load candidates: %v", err)
	}

	engine := scoring.NewEngine(cfg.Engine)
	batch, err := application.NewBatchScorer(
		engine,
		cfg.Batch,
		middleware.NewPrometheusMetrics(prometheus.DefaultRegisterer),
		middleware.NewOTelBatchObserver(),
	)
	if err != nil {
		log.Fatalf("Failed to build batch scorer: %v", err)
	}

	result, err := batch.ScoreAll(context.Background(), candidates, cfg.ResolvedCargo(), cfg.ReferenceYear)
	if err != nil {
		log.Fatalf("Batch scoring failed: %v", err)
	}
	for _, cerr := range result.Errors {
		log.Printf("skipped: %v", cerr)
	}

	ranked, err := application.Rank(result.Results, cfg.Preset)
	if err != nil {
		log.Fatalf("Ranking failed: %v", err)
	}

	printRanking(ranked, engine, cfg)
}

// resolveConfig loads the YAML config when given, otherwise assembles
// one from the command-line flags.
func resolveConfig(path, cargo string, year int, preset string) (*application.ScoringConfig, error) {
	if path != "" {
		return application.LoadConfig(path)
	}
	cfg := application.DefaultScoringConfig()
	cfg.Cargo = cargo
	cfg.ReferenceYear = year
	cfg.Preset = preset
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func printRanking(ranked []application.RankedCandidate, engine *scoring.Engine, cfg *application.ScoringConfig) {
	fmt.Printf("Ranking for %s (%s, reference year %d)\n\n", cfg.Cargo, cfg.Preset, cfg.ReferenceYear)
	fmt.Printf("%4s  %-30s %9s %9s %9s %9s %9s\n",
		"#", "Candidate", "Composite", "Comp", "Integ", "Transp", "Conf")

	for _, rc := range ranked {
		r := rc.Result
		fmt.Printf("%4d  %-30s %9.1f %9.1f %9.1f %9.1f %9.1f\n",
			rc.Rank, r.Candidate, rc.Composite,
			r.Competence.Total, r.IntegrityTotal(), r.Transparency.Total, r.Confidence.Total)

		if cfg.CustomWeights != nil {
			custom, err := engine.CustomComposite(r, *cfg.CustomWeights)
			if err != nil {
				log.Printf("custom composite for %s: %v", r.Candidate, err)
				continue
			}
			fmt.Printf("      %-30s %9.1f\n", "custom weights", custom)
		}
	}
}
