package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// SubjectPage lists the published topics of a subject in id order.
type SubjectPage struct {
	Subject domain.Subject
	Topics  []domain.Topic
}

// TopicPage is a published topic with its navigation.
type TopicPage struct {
	Topic      domain.Topic
	Subject    domain.Subject
	References []domain.Reference

	// Sidebar holds the subject's published topics in id order.
	Sidebar []domain.Topic
	Prev    *domain.Topic
	Next    *domain.Topic
}

// SearchResult is the outcome of a search. An empty query has no results.
type SearchResult struct {
	Query  string
	Topics []domain.Topic
}

// Home returns published topics, newest first.
func (s *Service) Home(ctx context.Context) ([]domain.Topic, error) {
	topics, err := s.topics.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.Home: %w", err)
	}
	return topics, nil
}

// SubjectTopics returns the subject named by slug and its published topics.
func (s *Service) SubjectTopics(ctx context.Context, slug string) (*SubjectPage, error) {
	subject, err := s.subjects.GetSubjectBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("catalog.SubjectTopics: %w", err)
	}

	topics, err := s.topics.ListPublishedBySubject(ctx, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("catalog.SubjectTopics list: %w", err)
	}

	return &SubjectPage{Subject: *subject, Topics: topics}, nil
}

// TopicPage returns a published topic by subject and topic slug, with the
// previous and next published topics of the same subject by id.
func (s *Service) TopicPage(ctx context.Context, subjectSlug, topicSlug string) (*TopicPage, error) {
	subject, err := s.subjects.GetSubjectBySlug(ctx, subjectSlug)
	if err != nil {
		return nil, fmt.Errorf("catalog.TopicPage subject: %w", err)
	}

	t, err := s.topics.FindPublishedBySlug(ctx, subjectSlug, topicSlug)
	if err != nil {
		return nil, fmt.Errorf("catalog.TopicPage: %w", err)
	}

	sidebar, err := s.topics.ListPublishedBySubject(ctx, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("catalog.TopicPage sidebar: %w", err)
	}

	refs, err := s.topics.ListReferences(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("catalog.TopicPage references: %w", err)
	}

	prev, next := domain.Neighbors(sidebar, t.ID)

	return &TopicPage{
		Topic:      *t,
		Subject:    *subject,
		References: refs,
		Sidebar:    sidebar,
		Prev:       prev,
		Next:       next,
	}, nil
}

// Search matches q case-insensitively against published titles and content.
func (s *Service) Search(ctx context.Context, q string) (*SearchResult, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return &SearchResult{}, nil
	}

	topics, err := s.topics.SearchPublished(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("catalog.Search: %w", err)
	}

	s.log.DebugContext(ctx, "search", slog.String("q", q), slog.Int("results", len(topics)))

	return &SearchResult{Query: q, Topics: topics}, nil
}
