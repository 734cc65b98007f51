package web

import (
	"context"
	"sync"

	"github.com/heartmarshall/learning-journal/internal/domain"
	"github.com/heartmarshall/learning-journal/internal/service/project"
)

var _ projectService = &projectServiceMock{}

type projectServiceMock struct {
	ListBySubjectFunc func(ctx context.Context, slug string) (*project.SubjectProjects, error)
	GetProjectFunc    func(ctx context.Context, id int64) (*domain.Project, error)
	GetForEditFunc    func(ctx context.Context, id int64) (*domain.Project, error)
	CreateProjectFunc func(ctx context.Context, input project.ProjectInput) (*domain.Project, error)
	UpdateProjectFunc func(ctx context.Context, id int64, input project.ProjectInput) (*domain.Project, error)

	calls struct {
		ListBySubject []struct {
			Ctx  context.Context
			Slug string
		}
		GetProject []struct {
			Ctx context.Context
			Id  int64
		}
		GetForEdit []struct {
			Ctx context.Context
			Id  int64
		}
		CreateProject []struct {
			Ctx   context.Context
			Input project.ProjectInput
		}
		UpdateProject []struct {
			Ctx   context.Context
			Id    int64
			Input project.ProjectInput
		}
	}
	lockListBySubject sync.RWMutex
	lockGetProject    sync.RWMutex
	lockGetForEdit    sync.RWMutex
	lockCreateProject sync.RWMutex
	lockUpdateProject sync.RWMutex
}

func (mock *projectServiceMock) ListBySubject(ctx context.Context, slug string) (*project.SubjectProjects, error) {
	if mock.ListBySubjectFunc == nil {
		panic("projectServiceMock.ListBySubjectFunc: method is nil but projectService.ListBySubject was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{
		Ctx:  ctx,
		Slug: slug,
	}
	mock.lockListBySubject.Lock()
	mock.calls.ListBySubject = append(mock.calls.ListBySubject, callInfo)
	mock.lockListBySubject.Unlock()
	return mock.ListBySubjectFunc(ctx, slug)
}

func (mock *projectServiceMock) ListBySubjectCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	var calls []struct {
		Ctx  context.Context
		Slug string
	}
	mock.lockListBySubject.RLock()
	calls = mock.calls.ListBySubject
	mock.lockListBySubject.RUnlock()
	return calls
}

func (mock *projectServiceMock) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	if mock.GetProjectFunc == nil {
		panic("projectServiceMock.GetProjectFunc: method is nil but projectService.GetProject was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetProject.Lock()
	mock.calls.GetProject = append(mock.calls.GetProject, callInfo)
	mock.lockGetProject.Unlock()
	return mock.GetProjectFunc(ctx, id)
}

func (mock *projectServiceMock) GetProjectCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetProject.RLock()
	calls = mock.calls.GetProject
	mock.lockGetProject.RUnlock()
	return calls
}

func (mock *projectServiceMock) GetForEdit(ctx context.Context, id int64) (*domain.Project, error) {
	if mock.GetForEditFunc == nil {
		panic("projectServiceMock.GetForEditFunc: method is nil but projectService.GetForEdit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetForEdit.Lock()
	mock.calls.GetForEdit = append(mock.calls.GetForEdit, callInfo)
	mock.lockGetForEdit.Unlock()
	return mock.GetForEditFunc(ctx, id)
}

func (mock *projectServiceMock) GetForEditCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetForEdit.RLock()
	calls = mock.calls.GetForEdit
	mock.lockGetForEdit.RUnlock()
	return calls
}

func (mock *projectServiceMock) CreateProject(ctx context.Context, input project.ProjectInput) (*domain.Project, error) {
	if mock.CreateProjectFunc == nil {
		panic("projectServiceMock.CreateProjectFunc: method is nil but projectService.CreateProject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input project.ProjectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateProject.Lock()
	mock.calls.CreateProject = append(mock.calls.CreateProject, callInfo)
	mock.lockCreateProject.Unlock()
	return mock.CreateProjectFunc(ctx, input)
}

func (mock *projectServiceMock) CreateProjectCalls() []struct {
	Ctx   context.Context
	Input project.ProjectInput
} {
	var calls []struct {
		Ctx   context.Context
		Input project.ProjectInput
	}
	mock.lockCreateProject.RLock()
	calls = mock.calls.CreateProject
	mock.lockCreateProject.RUnlock()
	return calls
}

func (mock *projectServiceMock) UpdateProject(ctx context.Context, id int64, input project.ProjectInput) (*domain.Project, error) {
	if mock.UpdateProjectFunc == nil {
		panic("projectServiceMock.UpdateProjectFunc: method is nil but projectService.UpdateProject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Input project.ProjectInput
	}{
		Ctx:   ctx,
		Id:    id,
		Input: input,
	}
	mock.lockUpdateProject.Lock()
	mock.calls.UpdateProject = append(mock.calls.UpdateProject, callInfo)
	mock.lockUpdateProject.Unlock()
	return mock.UpdateProjectFunc(ctx, id, input)
}

func (mock *projectServiceMock) UpdateProjectCalls() []struct {
	Ctx   context.Context
	Id    int64
	Input project.ProjectInput
} {
	var calls []struct {
		Ctx   context.Context
		Id    int64
		Input project.ProjectInput
	}
	mock.lockUpdateProject.RLock()
	calls = mock.calls.UpdateProject
	mock.lockUpdateProject.RUnlock()
	return calls
}
