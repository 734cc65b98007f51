package topic

import (
	"context"
	"sync"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	FindByIDFunc          func(ctx context.Context, id int64) (*domain.Topic, error)
	FindByIDAndAuthorFunc func(ctx context.Context, id int64, authorID int64) (*domain.Topic, error)
	FindPendingByIDFunc   func(ctx context.Context, id int64) (*domain.Topic, error)
	ListByAuthorFunc      func(ctx context.Context, authorID int64) ([]domain.Topic, error)
	ListPendingFunc       func(ctx context.Context) ([]domain.Topic, error)
	CreateFunc            func(ctx context.Context, t domain.Topic) (*domain.Topic, error)
	UpdateFunc            func(ctx context.Context, t domain.Topic) (*domain.Topic, error)
	DeleteFunc            func(ctx context.Context, id int64, authorID int64) error
	ListReferencesFunc    func(ctx context.Context, topicID int64) ([]domain.Reference, error)
	AddReferenceFunc      func(ctx context.Context, ref domain.Reference) (*domain.Reference, error)
	DeleteReferenceFunc   func(ctx context.Context, topicID int64, refID int64) error

	calls struct {
		FindByID []struct {
			Ctx context.Context
			Id  int64
		}
		FindByIDAndAuthor []struct {
			Ctx      context.Context
			Id       int64
			AuthorID int64
		}
		FindPendingByID []struct {
			Ctx context.Context
			Id  int64
		}
		ListByAuthor []struct {
			Ctx      context.Context
			AuthorID int64
		}
		ListPending []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			T   domain.Topic
		}
		Update []struct {
			Ctx context.Context
			T   domain.Topic
		}
		Delete []struct {
			Ctx      context.Context
			Id       int64
			AuthorID int64
		}
		ListReferences []struct {
			Ctx     context.Context
			TopicID int64
		}
		AddReference []struct {
			Ctx context.Context
			Ref domain.Reference
		}
		DeleteReference []struct {
			Ctx     context.Context
			TopicID int64
			RefID   int64
		}
	}
	lockFindByID          sync.RWMutex
	lockFindByIDAndAuthor sync.RWMutex
	lockFindPendingByID   sync.RWMutex
	lockListByAuthor      sync.RWMutex
	lockListPending       sync.RWMutex
	lockCreate            sync.RWMutex
	lockUpdate            sync.RWMutex
	lockDelete            sync.RWMutex
	lockListReferences    sync.RWMutex
	lockAddReference      sync.RWMutex
	lockDeleteReference   sync.RWMutex
}

func (mock *topicRepoMock) FindByID(ctx context.Context, id int64) (*domain.Topic, error) {
	if mock.FindByIDFunc == nil {
		panic("topicRepoMock.FindByIDFunc: method is nil but topicRepo.FindByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockFindByID.Lock()
	mock.calls.FindByID = append(mock.calls.FindByID, callInfo)
	mock.lockFindByID.Unlock()
	return mock.FindByIDFunc(ctx, id)
}

func (mock *topicRepoMock) FindByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockFindByID.RLock()
	calls = mock.calls.FindByID
	mock.lockFindByID.RUnlock()
	return calls
}

func (mock *topicRepoMock) FindByIDAndAuthor(ctx context.Context, id int64, authorID int64) (*domain.Topic, error) {
	if mock.FindByIDAndAuthorFunc == nil {
		panic("topicRepoMock.FindByIDAndAuthorFunc: method is nil but topicRepo.FindByIDAndAuthor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       int64
		AuthorID int64
	}{
		Ctx:      ctx,
		Id:       id,
		AuthorID: authorID,
	}
	mock.lockFindByIDAndAuthor.Lock()
	mock.calls.FindByIDAndAuthor = append(mock.calls.FindByIDAndAuthor, callInfo)
	mock.lockFindByIDAndAuthor.Unlock()
	return mock.FindByIDAndAuthorFunc(ctx, id, authorID)
}

func (mock *topicRepoMock) FindByIDAndAuthorCalls() []struct {
	Ctx      context.Context
	Id       int64
	AuthorID int64
} {
	var calls []struct {
		Ctx      context.Context
		Id       int64
		AuthorID int64
	}
	mock.lockFindByIDAndAuthor.RLock()
	calls = mock.calls.FindByIDAndAuthor
	mock.lockFindByIDAndAuthor.RUnlock()
	return calls
}

func (mock *topicRepoMock) FindPendingByID(ctx context.Context, id int64) (*domain.Topic, error) {
	if mock.FindPendingByIDFunc == nil {
		panic("topicRepoMock.FindPendingByIDFunc: method is nil but topicRepo.FindPendingByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockFindPendingByID.Lock()
	mock.calls.FindPendingByID = append(mock.calls.FindPendingByID, callInfo)
	mock.lockFindPendingByID.Unlock()
	return mock.FindPendingByIDFunc(ctx, id)
}

func (mock *topicRepoMock) FindPendingByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockFindPendingByID.RLock()
	calls = mock.calls.FindPendingByID
	mock.lockFindPendingByID.RUnlock()
	return calls
}

func (mock *topicRepoMock) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Topic, error) {
	if mock.ListByAuthorFunc == nil {
		panic("topicRepoMock.ListByAuthorFunc: method is nil but topicRepo.ListByAuthor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuthorID int64
	}{
		Ctx:      ctx,
		AuthorID: authorID,
	}
	mock.lockListByAuthor.Lock()
	mock.calls.ListByAuthor = append(mock.calls.ListByAuthor, callInfo)
	mock.lockListByAuthor.Unlock()
	return mock.ListByAuthorFunc(ctx, authorID)
}

func (mock *topicRepoMock) ListByAuthorCalls() []struct {
	Ctx      context.Context
	AuthorID int64
} {
	var calls []struct {
		Ctx      context.Context
		AuthorID int64
	}
	mock.lockListByAuthor.RLock()
	calls = mock.calls.ListByAuthor
	mock.lockListByAuthor.RUnlock()
	return calls
}

func (mock *topicRepoMock) ListPending(ctx context.Context) ([]domain.Topic, error) {
	if mock.ListPendingFunc == nil {
		panic("topicRepoMock.ListPendingFunc: method is nil but topicRepo.ListPending was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListPending.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, callInfo)
	mock.lockListPending.Unlock()
	return mock.ListPendingFunc(ctx)
}

func (mock *topicRepoMock) ListPendingCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListPending.RLock()
	calls = mock.calls.ListPending
	mock.lockListPending.RUnlock()
	return calls
}

func (mock *topicRepoMock) Create(ctx context.Context, t domain.Topic) (*domain.Topic, error) {
	if mock.CreateFunc == nil {
		panic("topicRepoMock.CreateFunc: method is nil but topicRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.Topic
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *topicRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   domain.Topic
} {
	var calls []struct {
		Ctx context.Context
		T   domain.Topic
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *topicRepoMock) Update(ctx context.Context, t domain.Topic) (*domain.Topic, error) {
	if mock.UpdateFunc == nil {
		panic("topicRepoMock.UpdateFunc: method is nil but topicRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.Topic
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, t)
}

func (mock *topicRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	T   domain.Topic
} {
	var calls []struct {
		Ctx context.Context
		T   domain.Topic
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *topicRepoMock) Delete(ctx context.Context, id int64, authorID int64) error {
	if mock.DeleteFunc == nil {
		panic("topicRepoMock.DeleteFunc: method is nil but topicRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       int64
		AuthorID int64
	}{
		Ctx:      ctx,
		Id:       id,
		AuthorID: authorID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id, authorID)
}

func (mock *topicRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	Id       int64
	AuthorID int64
} {
	var calls []struct {
		Ctx      context.Context
		Id       int64
		AuthorID int64
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
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

func (mock *topicRepoMock) AddReference(ctx context.Context, ref domain.Reference) (*domain.Reference, error) {
	if mock.AddReferenceFunc == nil {
		panic("topicRepoMock.AddReferenceFunc: method is nil but topicRepo.AddReference was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.Reference
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockAddReference.Lock()
	mock.calls.AddReference = append(mock.calls.AddReference, callInfo)
	mock.lockAddReference.Unlock()
	return mock.AddReferenceFunc(ctx, ref)
}

func (mock *topicRepoMock) AddReferenceCalls() []struct {
	Ctx context.Context
	Ref domain.Reference
} {
	var calls []struct {
		Ctx context.Context
		Ref domain.Reference
	}
	mock.lockAddReference.RLock()
	calls = mock.calls.AddReference
	mock.lockAddReference.RUnlock()
	return calls
}

func (mock *topicRepoMock) DeleteReference(ctx context.Context, topicID int64, refID int64) error {
	if mock.DeleteReferenceFunc == nil {
		panic("topicRepoMock.DeleteReferenceFunc: method is nil but topicRepo.DeleteReference was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID int64
		RefID   int64
	}{
		Ctx:     ctx,
		TopicID: topicID,
		RefID:   refID,
	}
	mock.lockDeleteReference.Lock()
	mock.calls.DeleteReference = append(mock.calls.DeleteReference, callInfo)
	mock.lockDeleteReference.Unlock()
	return mock.DeleteReferenceFunc(ctx, topicID, refID)
}

func (mock *topicRepoMock) DeleteReferenceCalls() []struct {
	Ctx     context.Context
	TopicID int64
	RefID   int64
} {
	var calls []struct {
		Ctx     context.Context
		TopicID int64
		RefID   int64
	}
	mock.lockDeleteReference.RLock()
	calls = mock.calls.DeleteReference
	mock.lockDeleteReference.RUnlock()
	return calls
}
