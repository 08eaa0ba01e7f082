package mocks

import (
	"context"
	"errors"

	kdb "github.com/ragamarkely/todo-app/pkg/db"
)

type SetCompletedArgs struct {
	Id        int
	Completed bool
}

type ListInterface struct {
	Impl struct {
		Create       func(ctx context.Context, name string) (*kdb.TodoList, error)
		Get          func(ctx context.Context, id int) (*kdb.TodoList, error)
		Find         func(ctx context.Context) ([]kdb.TodoList, error)
		SetCompleted func(ctx context.Context, id int, completed bool) error
		Delete       func(ctx context.Context, id int) error
	}
	Calls struct {
		Create       CallLog[string]
		Get          CallLog[int]
		Find         CallLog[struct{}]
		SetCompleted CallLog[SetCompletedArgs]
		Delete       CallLog[int]
	}
}

var _ kdb.ListInterface = &ListInterface{}

func NewListInterface() *ListInterface {
	return &ListInterface{}
}

func (m *ListInterface) Create(ctx context.Context, name string) (*kdb.TodoList, error) {
	m.Calls.Create = append(m.Calls.Create, name)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, name)
	}

	panic(errors.New("should not be called"))
}

func (m *ListInterface) Get(ctx context.Context, id int) (*kdb.TodoList, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}

	panic(errors.New("should not be called"))
}

func (m *ListInterface) Find(ctx context.Context) ([]kdb.TodoList, error) {
	m.Calls.Find = append(m.Calls.Find, struct{}{})
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx)
	}

	panic(errors.New("should not be called"))
}

func (m *ListInterface) SetCompleted(ctx context.Context, id int, completed bool) error {
	m.Calls.SetCompleted = append(m.Calls.SetCompleted, SetCompletedArgs{Id: id, Completed: completed})
	if m.Impl.SetCompleted != nil {
		return m.Impl.SetCompleted(ctx, id, completed)
	}

	panic(errors.New("should not be called"))
}

func (m *ListInterface) Delete(ctx context.Context, id int) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}

	panic(errors.New("should not be called"))
}
