package project

import (
	"context"
	"sync"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.Project, error)
	ListBySubjectFunc func(ctx context.Context, subjectID int64) ([]domain.Project, error)
	CreateFunc        func(ctx context.Context, p domain.Project) (*domain.Project, error)
	UpdateFunc        func(ctx context.Context, p domain.Project) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		ListBySubject []struct {
			Ctx       context.Context
			SubjectID int64
		}
		Create []struct {
			Ctx context.Context
			P   domain.Project
		}
		Update []struct {
			Ctx context.Context
			P   domain.Project
		}
	}
	lockGetByID       sync.RWMutex
	lockListBySubject sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdate        sync.RWMutex
}

func (mock *projectRepoMock) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *projectRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *projectRepoMock) ListBySubject(ctx context.Context, subjectID int64) ([]domain.Project, error) {
	if mock.ListBySubjectFunc == nil {
		panic("projectRepoMock.ListBySubjectFunc: method is nil but projectRepo.ListBySubject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SubjectID int64
	}{
		Ctx:       ctx,
		SubjectID: subjectID,
	}
	mock.lockListBySubject.Lock()
	mock.calls.ListBySubject = append(mock.calls.ListBySubject, callInfo)
	mock.lockListBySubject.Unlock()
	return mock.ListBySubjectFunc(ctx, subjectID)
}

func (mock *projectRepoMock) ListBySubjectCalls() []struct {
	Ctx       context.Context
	SubjectID int64
} {
	var calls []struct {
		Ctx       context.Context
		SubjectID int64
	}
	mock.lockListBySubject.RLock()
	calls = mock.calls.ListBySubject
	mock.lockListBySubject.RUnlock()
	return calls
}

func (mock *projectRepoMock) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Project
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *projectRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Project
} {
	var calls []struct {
		Ctx context.Context
		P   domain.Project
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *projectRepoMock) Update(ctx context.Context, p domain.Project) error {
	if mock.UpdateFunc == nil {
		panic("projectRepoMock.UpdateFunc: method is nil but projectRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Project
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *projectRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   domain.Project
} {
	var calls []struct {
		Ctx context.Context
		P   domain.Project
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
