package mocks

import (
	"context"

	kdb "github.com/ragamarkely/todo-app/pkg/db"
)

// Pinger mocks the Ping method of kdb.TodoDatabase.
type Pinger struct {
	Impl struct {
		Ping func(ctx context.Context) error
	}
	Calls struct {
		Ping CallLog[struct{}]
	}
}

func (m *Pinger) Ping(ctx context.Context) error {
	m.Calls.Ping = append(m.Calls.Ping, struct{}{})
	if m.Impl.Ping != nil {
		return m.Impl.Ping(ctx)
	}
	return nil
}

// Database bundles mocks as kdb.TodoDatabase.
type Database struct {
	Pinger
	ListMock   *ListInterface
	TodoMock   *TodoInterface
	SchemaMock kdb.SchemaInterface
	Closed     bool
}

var _ kdb.TodoDatabase = &Database{}

func NewDatabase() *Database {
	return &Database{
		ListMock: NewListInterface(),
		TodoMock: NewTodoInterface(),
	}
}

func (m *Database) Lists() kdb.ListInterface {
	return m.ListMock
}

func (m *Database) Todos() kdb.TodoInterface {
	return m.TodoMock
}

func (m *Database) Schema() kdb.SchemaInterface {
	return m.SchemaMock
}

func (m *Database) Close() error {
	m.Closed = true
	return nil
}
