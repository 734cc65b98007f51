package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	ListPublishedFunc          func(ctx context.Context) ([]domain.Topic, error)
	ListPublishedBySubjectFunc func(ctx context.Context, subjectID int64) ([]domain.Topic, error)
	FindPublishedBySlugFunc    func(ctx context.Context, subjectSlug string, topicSlug string) (*domain.Topic, error)
	SearchPublishedFunc        func(ctx context.Context, q string) ([]domain.Topic, error)
	ListReferencesFunc         func(ctx context.Context, topicID int64) ([]domain.Reference, error)

	calls struct {
		ListPublished []struct {
			Ctx context.Context
		}
		ListPublishedBySubject []struct {
			Ctx       context.Context
			SubjectID int64
		}
		FindPublishedBySlug []struct {
			Ctx         context.Context
			SubjectSlug string
			TopicSlug   string
		}
		SearchPublished []struct {
			Ctx context.Context
			Q   string
		}
		ListReferences []struct {
			Ctx     context.Context
			TopicID int64
		}
	}
	lockListPublished          sync.RWMutex
	lockListPublishedBySubject sync.RWMutex
	lockFindPublishedBySlug    sync.RWMutex
	lockSearchPublished        sync.RWMutex
	lockListReferences         sync.RWMutex
}

func (mock *topicRepoMock) ListPublished(ctx context.Context) ([]domain.Topic, error) {
	if mock.ListPublishedFunc == nil {
		panic("topicRepoMock.ListPublishedFunc: method is nil but topicRepo.ListPublished was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListPublished.Lock()
	mock.calls.ListPublished = append(mock.calls.ListPublished, callInfo)
	mock.lockListPublished.Unlock()
	return mock.ListPublishedFunc(ctx)
}

func (mock *topicRepoMock) ListPublishedCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListPublished.RLock()
	calls = mock.calls.ListPublished
	mock.lockListPublished.RUnlock()
	return calls
}

func (mock *topicRepoMock) ListPublishedBySubject(ctx context.Context, subjectID int64) ([]domain.Topic, error) {
	if mock.ListPublishedBySubjectFunc == nil {
		panic("topicRepoMock.ListPublishedBySubjectFunc: method is nil but topicRepo.ListPublishedBySubject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SubjectID int64
	}{
		Ctx:       ctx,
		SubjectID: subjectID,
	}
	mock.lockListPublishedBySubject.Lock()
	mock.calls.ListPublishedBySubject = append(mock.calls.ListPublishedBySubject, callInfo)
	mock.lockListPublishedBySubject.Unlock()
	return mock.ListPublishedBySubjectFunc(ctx, subjectID)
}

func (mock *topicRepoMock) ListPublishedBySubjectCalls() []struct {
	Ctx       context.Context
	SubjectID int64
} {
	var calls []struct {
		Ctx       context.Context
		SubjectID int64
	}
	mock.lockListPublishedBySubject.RLock()
	calls = mock.calls.ListPublishedBySubject
	mock.lockListPublishedBySubject.RUnlock()
	return calls
}

func (mock *topicRepoMock) FindPublishedBySlug(ctx context.Context, subjectSlug string, topicSlug string) (*domain.Topic, error) {
	if mock.FindPublishedBySlugFunc == nil {
		panic("topicRepoMock.FindPublishedBySlugFunc: method is nil but topicRepo.FindPublishedBySlug was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		SubjectSlug string
		TopicSlug   string
	}{
		Ctx:         ctx,
		SubjectSlug: subjectSlug,
		TopicSlug:   topicSlug,
	}
	mock.lockFindPublishedBySlug.Lock()
	mock.calls.FindPublishedBySlug = append(mock.calls.FindPublishedBySlug, callInfo)
	mock.lockFindPublishedBySlug.Unlock()
	return mock.FindPublishedBySlugFunc(ctx, subjectSlug, topicSlug)
}

func (mock *topicRepoMock) FindPublishedBySlugCalls() []struct {
	Ctx         context.Context
	SubjectSlug string
	TopicSlug   string
} {
	var calls []struct {
		Ctx         context.Context
		SubjectSlug string
		TopicSlug   string
	}
	mock.lockFindPublishedBySlug.RLock()
	calls = mock.calls.FindPublishedBySlug
	mock.lockFindPublishedBySlug.RUnlock()
	return calls
}

func (mock *topicRepoMock) SearchPublished(ctx context.Context, q string) ([]domain.Topic, error) {
	if mock.SearchPublishedFunc == nil {
		panic("topicRepoMock.SearchPublishedFunc: method is nil but topicRepo.SearchPublished was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   string
	}{
		Ctx: ctx,
		Q:   q,
	}
	mock.lockSearchPublished.Lock()
	mock.calls.SearchPublished = append(mock.calls.SearchPublished, callInfo)
	mock.lockSearchPublished.Unlock()
	return mock.SearchPublishedFunc(ctx, q)
}

func (mock *topicRepoMock) SearchPublishedCalls() []struct {
	Ctx context.Context
	Q   string
} {
	var calls []struct {
		Ctx context.Context
		Q   string
	}
	mock.lockSearchPublished.RLock()
	calls = mock.calls.SearchPublished
	mock.lockSearchPublished.RUnlock()
	return calls
}

func (mock *topicRepoMock) ListReferences(ctx context.Context, topicID int64) ([]domain.Reference, error) {
	if mock.ListReferencesFunc == nil {
		panic("topicRepoMock.ListReferencesFunc: method is nil but topicRepo.ListReferences was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID int64
	}{
		Ctx:     ctx,
		TopicID: topicID,
	}
	mock.lockListReferences.Lock()
	mock.calls.ListReferences = append(mock.calls.ListReferences, callInfo)
	mock.lockListReferences.Unlock()
	return mock.ListReferencesFunc(ctx, topicID)
}

func (mock *topicRepoMock) ListReferencesCalls() []struct {
	Ctx     context.Context
	TopicID int64
} {
	var calls []struct {
		Ctx     context.Context
		TopicID int64
	}
	mock.lockListReferences.RLock()
	calls = mock.calls.ListReferences
	mock.lockListReferences.RUnlock()
	return calls
}
