package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

var _ subjectRepo = &subjectRepoMock{}

type subjectRepoMock struct {
	GetSubjectBySlugFunc func(ctx context.Context, slug string) (*domain.Subject, error)

	calls struct {
		GetSubjectBySlug []struct {
			Ctx  context.Context
			Slug string
		}
	}
	lockGetSubjectBySlug sync.RWMutex
}

func (mock *subjectRepoMock) GetSubjectBySlug(ctx context.Context, slug string) (*domain.Subject, error) {
	if mock.GetSubjectBySlugFunc == nil {
		panic("subjectRepoMock.GetSubjectBySlugFunc: method is nil but subjectRepo.GetSubjectBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{
		Ctx:  ctx,
		Slug: slug,
	}
	mock.lockGetSubjectBySlug.Lock()
	mock.calls.GetSubjectBySlug = append(mock.calls.GetSubjectBySlug, callInfo)
	mock.lockGetSubjectBySlug.Unlock()
	return mock.GetSubjectBySlugFunc(ctx, slug)
}

func (mock *subjectRepoMock) GetSubjectBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	var calls []struct {
		Ctx  context.Context
		Slug string
	}
	mock.lockGetSubjectBySlug.RLock()
	calls = mock.calls.GetSubjectBySlug
	mock.lockGetSubjectBySlug.RUnlock()
	return calls
}
