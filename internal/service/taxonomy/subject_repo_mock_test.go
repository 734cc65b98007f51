package taxonomy

import (
	"context"
	"sync"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

var _ subjectRepo = &subjectRepoMock{}

type subjectRepoMock struct {
	ListSubjectsFunc   func(ctx context.Context, activeOnly bool) ([]domain.Subject, error)
	GetSubjectByIDFunc func(ctx context.Context, id int64) (*domain.Subject, error)
	CreateSubjectFunc  func(ctx context.Context, s domain.Subject) (*domain.Subject, error)
	UpdateSubjectFunc  func(ctx context.Context, s domain.Subject) (*domain.Subject, error)
	ListCategoriesFunc func(ctx context.Context, subjectID int64) ([]domain.Category, error)
	CreateCategoryFunc func(ctx context.Context, c domain.Category) (*domain.Category, error)

	calls struct {
		ListSubjects []struct {
			Ctx        context.Context
			ActiveOnly bool
		}
		GetSubjectByID []struct {
			Ctx context.Context
			Id  int64
		}
		CreateSubject []struct {
			Ctx context.Context
			S   domain.Subject
		}
		UpdateSubject []struct {
			Ctx context.Context
			S   domain.Subject
		}
		ListCategories []struct {
			Ctx       context.Context
			SubjectID int64
		}
		CreateCategory []struct {
			Ctx context.Context
			C   domain.Category
		}
	}
	lockListSubjects   sync.RWMutex
	lockGetSubjectByID sync.RWMutex
	lockCreateSubject  sync.RWMutex
	lockUpdateSubject  sync.RWMutex
	lockListCategories sync.RWMutex
	lockCreateCategory sync.RWMutex
}

func (mock *subjectRepoMock) ListSubjects(ctx context.Context, activeOnly bool) ([]domain.Subject, error) {
	if mock.ListSubjectsFunc == nil {
		panic("subjectRepoMock.ListSubjectsFunc: method is nil but subjectRepo.ListSubjects was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ActiveOnly bool
	}{
		Ctx:        ctx,
		ActiveOnly: activeOnly,
	}
	mock.lockListSubjects.Lock()
	mock.calls.ListSubjects = append(mock.calls.ListSubjects, callInfo)
	mock.lockListSubjects.Unlock()
	return mock.ListSubjectsFunc(ctx, activeOnly)
}

func (mock *subjectRepoMock) ListSubjectsCalls() []struct {
	Ctx        context.Context
	ActiveOnly bool
} {
	var calls []struct {
		Ctx        context.Context
		ActiveOnly bool
	}
	mock.lockListSubjects.RLock()
	calls = mock.calls.ListSubjects
	mock.lockListSubjects.RUnlock()
	return calls
}

func (mock *subjectRepoMock) GetSubjectByID(ctx context.Context, id int64) (*domain.Subject, error) {
	if mock.GetSubjectByIDFunc == nil {
		panic("subjectRepoMock.GetSubjectByIDFunc: method is nil but subjectRepo.GetSubjectByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetSubjectByID.Lock()
	mock.calls.GetSubjectByID = append(mock.calls.GetSubjectByID, callInfo)
	mock.lockGetSubjectByID.Unlock()
	return mock.GetSubjectByIDFunc(ctx, id)
}

func (mock *subjectRepoMock) GetSubjectByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetSubjectByID.RLock()
	calls = mock.calls.GetSubjectByID
	mock.lockGetSubjectByID.RUnlock()
	return calls
}

func (mock *subjectRepoMock) CreateSubject(ctx context.Context, s domain.Subject) (*domain.Subject, error) {
	if mock.CreateSubjectFunc == nil {
		panic("subjectRepoMock.CreateSubjectFunc: method is nil but subjectRepo.CreateSubject was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Subject
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreateSubject.Lock()
	mock.calls.CreateSubject = append(mock.calls.CreateSubject, callInfo)
	mock.lockCreateSubject.Unlock()
	return mock.CreateSubjectFunc(ctx, s)
}

func (mock *subjectRepoMock) CreateSubjectCalls() []struct {
	Ctx context.Context
	S   domain.Subject
} {
	var calls []struct {
		Ctx context.Context
		S   domain.Subject
	}
	mock.lockCreateSubject.RLock()
	calls = mock.calls.CreateSubject
	mock.lockCreateSubject.RUnlock()
	return calls
}

func (mock *subjectRepoMock) UpdateSubject(ctx context.Context, s domain.Subject) (*domain.Subject, error) {
	if mock.UpdateSubjectFunc == nil {
		panic("subjectRepoMock.UpdateSubjectFunc: method is nil but subjectRepo.UpdateSubject was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Subject
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockUpdateSubject.Lock()
	mock.calls.UpdateSubject = append(mock.calls.UpdateSubject, callInfo)
	mock.lockUpdateSubject.Unlock()
	return mock.UpdateSubjectFunc(ctx, s)
}

func (mock *subjectRepoMock) UpdateSubjectCalls() []struct {
	Ctx context.Context
	S   domain.Subject
} {
	var calls []struct {
		Ctx context.Context
		S   domain.Subject
	}
	mock.lockUpdateSubject.RLock()
	calls = mock.calls.UpdateSubject
	mock.lockUpdateSubject.RUnlock()
	return calls
}

func (mock *subjectRepoMock) ListCategories(ctx context.Context, subjectID int64) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("subjectRepoMock.ListCategoriesFunc: method is nil but subjectRepo.ListCategories was just called")
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

func (mock *subjectRepoMock) ListCategoriesCalls() []struct {
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

func (mock *subjectRepoMock) CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if mock.CreateCategoryFunc == nil {
		panic("subjectRepoMock.CreateCategoryFunc: method is nil but subjectRepo.CreateCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Category
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreateCategory.Lock()
	mock.calls.CreateCategory = append(mock.calls.CreateCategory, callInfo)
	mock.lockCreateCategory.Unlock()
	return mock.CreateCategoryFunc(ctx, c)
}

func (mock *subjectRepoMock) CreateCategoryCalls() []struct {
	Ctx context.Context
	C   domain.Category
} {
	var calls []struct {
		Ctx context.Context
		C   domain.Category
	}
	mock.lockCreateCategory.RLock()
	calls = mock.calls.CreateCategory
	mock.lockCreateCategory.RUnlock()
	return calls
}
