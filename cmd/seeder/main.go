// Command seeder upserts subjects and categories from a YAML taxonomy file.
// Existing rows are matched by slug and refreshed, so it is safe to re-run.
//
// Flags:
//
//	--taxonomy       path to the taxonomy YAML file (overrides config)
//	--dry-run        validate the file and report without writing
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/learning-journal/internal/adapter/postgres"
	"github.com/heartmarshall/learning-journal/internal/adapter/postgres/subject"
	"github.com/heartmarshall/learning-journal/internal/app"
	"github.com/heartmarshall/learning-journal/internal/app/seeder"
	"github.com/heartmarshall/learning-journal/internal/config"
)

var _ seeder.TaxonomyRepo = (*subject.Repo)(nil)

func main() {
	taxonomyFlag := flag.String("taxonomy", "", "path to the taxonomy YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "validate and report without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}
	logger := app.NewLogger(appCfg.Log, os.Stderr)

	cfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *taxonomyFlag != "" {
		cfg.TaxonomyPath = *taxonomyFlag
	}
	if *dryRunFlag {
		cfg.DryRun = true
	}

	taxonomy, err := seeder.LoadTaxonomy(cfg.TaxonomyPath)
	if err != nil {
		logger.Error("load taxonomy", slog.String("path", cfg.TaxonomyPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := app.Connect(ctx, appCfg, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, subject.New(pool), postgres.NewTxManager(pool), *cfg)
	result, err := pipeline.Run(ctx, taxonomy)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	verb := "Seeded"
	if result.DryRun {
		verb = "Would seed"
	}
	fmt.Printf("%s %d subjects and %d categories in %s.\n", verb, result.Subjects, result.Categories, result.Duration.Round(time.Millisecond))
}
