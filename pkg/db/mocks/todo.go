package mocks

import (
	"context"
	"errors"

	kdb "github.com/ragamarkely/todo-app/pkg/db"
)

type TodoCreateArgs struct {
	ListId      int
	Description string
}

type TodoInterface struct {
	Impl struct {
		Create       func(ctx context.Context, listId int, description string) (*kdb.Todo, error)
		Find         func(ctx context.Context, listId int) ([]kdb.Todo, error)
		SetCompleted func(ctx context.Context, id int, completed bool) error
		Delete       func(ctx context.Context, id int) error
	}
	Calls struct {
		Create       CallLog[TodoCreateArgs]
		Find         CallLog[int]
		SetCompleted CallLog[SetCompletedArgs]
		Delete       CallLog[int]
	}
}

var _ kdb.TodoInterface = &TodoInterface{}

func NewTodoInterface() *TodoInterface {
	return &TodoInterface{}
}

func (m *TodoInterface) Create(ctx context.Context, listId int, description string) (*kdb.Todo, error) {
	m.Calls.Create = append(m.Calls.Create, TodoCreateArgs{ListId: listId, Description: description})
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, listId, description)
	}

	panic(errors.New("should not be called"))
}

func (m *TodoInterface) Find(ctx context.Context, listId int) ([]kdb.Todo, error) {
	m.Calls.Find = append(m.Calls.Find, listId)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, listId)
	}

	panic(errors.New("should not be called"))
}

func (m *TodoInterface) SetCompleted(ctx context.Context, id int, completed bool) error {
	m.Calls.SetCompleted = append(m.Calls.SetCompleted, SetCompletedArgs{Id: id, Completed: completed})
	if m.Impl.SetCompleted != nil {
		return m.Impl.SetCompleted(ctx, id, completed)
	}

	panic(errors.New("should not be called"))
}

func (m *TodoInterface) Delete(ctx context.Context, id int) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}

	panic(errors.New("should not be called"))
}
