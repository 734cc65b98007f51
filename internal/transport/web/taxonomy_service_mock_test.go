package web

import (
	"context"
	"sync"

	"github.com/heartmarshall/learning-journal/internal/domain"
	"github.com/heartmarshall/learning-journal/internal/service/taxonomy"
)

var _ taxonomyService = &taxonomyServiceMock{}

type taxonomyServiceMock struct {
	NavSubjectsFunc    func(ctx context.Context) ([]domain.Subject, error)
	ListSubjectsFunc   func(ctx context.Context) ([]domain.Subject, error)
	GetSubjectFunc     func(ctx context.Context, id int64) (*domain.Subject, error)
	CreateSubjectFunc  func(ctx context.Context, input taxonomy.SubjectInput) (*domain.Subject, error)
	UpdateSubjectFunc  func(ctx context.Context, id int64, input taxonomy.SubjectInput) (*domain.Subject, error)
	ListCategoriesFunc func(ctx context.Context, subjectID int64) ([]domain.Category, error)
	CreateCategoryFunc func(ctx context.Context, subjectID int64, input taxonomy.CategoryInput) (*domain.Category, error)

	calls struct {
		NavSubjects []struct {
			Ctx context.Context
		}
		ListSubjects []struct {
			Ctx context.Context
		}
		GetSubject []struct {
			Ctx context.Context
			Id  int64
		}
		CreateSubject []struct {
			Ctx   context.Context
			Input taxonomy.SubjectInput
		}
		UpdateSubject []struct {
			Ctx   context.Context
			Id    int64
			Input taxonomy.SubjectInput
		}
		ListCategories []struct {
			Ctx       context.Context
			SubjectID int64
		}
		CreateCategory []struct {
			Ctx       context.Context
			SubjectID int64
			Input     taxonomy.CategoryInput
		}
	}
	lockNavSubjects    sync.RWMutex
	lockListSubjects   sync.RWMutex
	lockGetSubject     sync.RWMutex
	lockCreateSubject  sync.RWMutex
	lockUpdateSubject  sync.RWMutex
	lockListCategories sync.RWMutex
	lockCreateCategory sync.RWMutex
}

func (mock *taxonomyServiceMock) NavSubjects(ctx context.Context) ([]domain.Subject, error) {
	if mock.NavSubjectsFunc == nil {
		panic("taxonomyServiceMock.NavSubjectsFunc: method is nil but taxonomyService.NavSubjects was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockNavSubjects.Lock()
	mock.calls.NavSubjects = append(mock.calls.NavSubjects, callInfo)
	mock.lockNavSubjects.Unlock()
	return mock.NavSubjectsFunc(ctx)
}

func (mock *taxonomyServiceMock) NavSubjectsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockNavSubjects.RLock()
	calls = mock.calls.NavSubjects
	mock.lockNavSubjects.RUnlock()
	return calls
}

func (mock *taxonomyServiceMock) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	if mock.ListSubjectsFunc == nil {
		panic("taxonomyServiceMock.ListSubjectsFunc: method is nil but taxonomyService.ListSubjects was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListSubjects.Lock()
	mock.calls.ListSubjects = append(mock.calls.ListSubjects, callInfo)
	mock.lockListSubjects.Unlock()
	return mock.ListSubjectsFunc(ctx)
}

func (mock *taxonomyServiceMock) ListSubjectsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListSubjects.RLock()
	calls = mock.calls.ListSubjects
	mock.lockListSubjects.RUnlock()
	return calls
}

func (mock *taxonomyServiceMock) GetSubject(ctx context.Context, id int64) (*domain.Subject, error) {
	if mock.GetSubjectFunc == nil {
		panic("taxonomyServiceMock.GetSubjectFunc: method is nil but taxonomyService.GetSubject was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetSubject.Lock()
	mock.calls.GetSubject = append(mock.calls.GetSubject, callInfo)
	mock.lockGetSubject.Unlock()
	return mock.GetSubjectFunc(ctx, id)
}

func (mock *taxonomyServiceMock) GetSubjectCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetSubject.RLock()
	calls = mock.calls.GetSubject
	mock.lockGetSubject.RUnlock()
	return calls
}

func (mock *taxonomyServiceMock) CreateSubject(ctx context.Context, input taxonomy.SubjectInput) (*domain.Subject, error) {
	if mock.CreateSubjectFunc == nil {
		panic("taxonomyServiceMock.CreateSubjectFunc: method is nil but taxonomyService.CreateSubject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input taxonomy.SubjectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateSubject.Lock()
	mock.calls.CreateSubject = append(mock.calls.CreateSubject, callInfo)
	mock.lockCreateSubject.Unlock()
	return mock.CreateSubjectFunc(ctx, input)
}

func (mock *taxonomyServiceMock) CreateSubjectCalls() []struct {
	Ctx   context.Context
	Input taxonomy.SubjectInput
} {
	var calls []struct {
		Ctx   context.Context
		Input taxonomy.SubjectInput
	}
	mock.lockCreateSubject.RLock()
	calls = mock.calls.CreateSubject
	mock.lockCreateSubject.RUnlock()
	return calls
}

func (mock *taxonomyServiceMock) UpdateSubject(ctx context.Context, id int64, input taxonomy.SubjectInput) (*domain.Subject, error) {
	if mock.UpdateSubjectFunc == nil {
		panic("taxonomyServiceMock.UpdateSubjectFunc: method is nil but taxonomyService.UpdateSubject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Input taxonomy.SubjectInput
	}{
		Ctx:   ctx,
		Id:    id,
		Input: input,
	}
	mock.lockUpdateSubject.Lock()
	mock.calls.UpdateSubject = append(mock.calls.UpdateSubject, callInfo)
	mock.lockUpdateSubject.Unlock()
	return mock.UpdateSubjectFunc(ctx, id, input)
}

func (mock *taxonomyServiceMock) UpdateSubjectCalls() []struct {
	Ctx   context.Context
	Id    int64
	Input taxonomy.SubjectInput
} {
	var calls []struct {
		Ctx   context.Context
		Id    int64
		Input taxonomy.SubjectInput
	}
	mock.lockUpdateSubject.RLock()
	calls = mock.calls.UpdateSubject
	mock.lockUpdateSubject.RUnlock()
	return calls
}

func (mock *taxonomyServiceMock) ListCategories(ctx context.Context, subjectID int64) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("taxonomyServiceMock.ListCategoriesFunc: method is nil but taxonomyService.ListCategories was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SubjectID int64
	}{
		Ctx:       ctx,
		SubjectID: subjectID,
	}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx, subjectID)
}

func (mock *taxonomyServiceMock) ListCategoriesCalls() []struct {
	Ctx       context.Context
	SubjectID int64
} {
	var calls []struct {
		Ctx       context.Context
		SubjectID int64
	}
	mock.lockListCategories.RLock()
	calls = mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}

func (mock *taxonomyServiceMock) CreateCategory(ctx context.Context, subjectID int64, input taxonomy.CategoryInput) (*domain.Category, error) {
	if mock.CreateCategoryFunc == nil {
		panic("taxonomyServiceMock.CreateCategoryFunc: method is nil but taxonomyService.CreateCategory was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SubjectID int64
		Input     taxonomy.CategoryInput
	}{
		Ctx:       ctx,
		SubjectID: subjectID,
		Input:     input,
	}
	mock.lockCreateCategory.Lock()
	mock.calls.CreateCategory = append(mock.calls.CreateCategory, callInfo)
	mock.lockCreateCategory.Unlock()
	return mock.CreateCategoryFunc(ctx, subjectID, input)
}

func (mock *taxonomyServiceMock) CreateCategoryCalls() []struct {
	Ctx       context.Context
	SubjectID int64
	Input     taxonomy.CategoryInput
} {
	var calls []struct {
		Ctx       context.Context
		SubjectID int64
		Input     taxonomy.CategoryInput
	}
	mock.lockCreateCategory.RLock()
	calls = mock.calls.CreateCategory
	mock.lockCreateCategory.RUnlock()
	return calls
}
