package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

type topicRepo interface {
	ListPublished(ctx context.Context) ([]domain.Topic, error)
	ListPublishedBySubject(ctx context.Context, subjectID int64) ([]domain.Topic, error)
	FindPublishedBySlug(ctx context.Context, subjectSlug, topicSlug string) (*domain.Topic, error)
	SearchPublished(ctx context.Context, q string) ([]domain.Topic, error)
	ListReferences(ctx context.Context, topicID int64) ([]domain.Reference, error)
}

type subjectRepo interface {
	GetSubjectBySlug(ctx context.Context, slug string) (*domain.Subject, error)
}

// Service serves the public, read-only views. Only published topics are
// ever returned.
type Service struct {
	log      *slog.Logger
	topics   topicRepo
	subjects subjectRepo
}

func NewService(logger *slog.Logger, topics topicRepo, subjects subjectRepo) *Service {
	return &Service{
		log:      logger.With("service", "catalog"),
		topics:   topics,
		subjects: subjects,
	}
}
