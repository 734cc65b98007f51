package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// TaxonomyRepo is the write contract the pipeline needs. Implemented by
// the postgres subject repository.
type TaxonomyRepo interface {
	UpsertSubject(ctx context.Context, s domain.Subject) (*domain.Subject, error)
	UpsertCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result summarizes a pipeline run.
type Result struct {
	Subjects   int
	Categories int
	DryRun     bool
	Duration   time.Duration
}

// Pipeline upserts a taxonomy in a single transaction: either the whole
// file is applied or nothing is.
type Pipeline struct {
	log  *slog.Logger
	repo TaxonomyRepo
	tx   txManager
	cfg  Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo TaxonomyRepo, tx txManager, cfg Config) *Pipeline {
	return &Pipeline{log: log.With("component", "seeder"), repo: repo, tx: tx, cfg: cfg}
}

// Run applies t. In dry-run mode it only logs what would be written.
func (p *Pipeline) Run(ctx context.Context, t *Taxonomy) (Result, error) {
	start := time.Now()
	result := Result{DryRun: p.cfg.DryRun}

	if p.cfg.DryRun {
		for _, s := range t.Subjects {
			p.log.InfoContext(ctx, "would upsert subject",
				slog.String("slug", s.Slug),
				slog.Int("categories", len(s.Categories)),
			)
		}
		result.Subjects = len(t.Subjects)
		result.Categories = t.CategoryCount()
		result.Duration = time.Since(start)
		return result, nil
	}

	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		result.Subjects, result.Categories = 0, 0
		for _, seed := range t.Subjects {
			subject, err := p.repo.UpsertSubject(ctx, seed.toDomain())
			if err != nil {
				return fmt.Errorf("upsert subject %q: %w", seed.Slug, err)
			}
			result.Subjects++

			for _, c := range seed.Categories {
				if _, err := p.repo.UpsertCategory(ctx, c.toDomain(subject.ID)); err != nil {
					return fmt.Errorf("upsert category %q of %q: %w", c.Slug, seed.Slug, err)
				}
				result.Categories++
			}
		}
		return nil
	})
	result.Duration = time.Since(start)
	if err != nil {
		p.log.WarnContext(ctx, "seeding failed, nothing written", slog.String("error", err.Error()))
		return result, fmt.Errorf("seeder: %w", err)
	}

	p.log.InfoContext(ctx, "taxonomy seeded",
		slog.Int("subjects", result.Subjects),
		slog.Int("categories", result.Categories),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}
