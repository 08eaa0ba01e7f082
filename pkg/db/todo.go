package db

import "context"

type Todo struct {
	Id          int
	Description string
	Completed   bool
	ListId      int
}

func (t *Todo) Equal(o *Todo) bool {
	if t == nil || o == nil {
		return t == nil && o == nil
	}
	return *t == *o
}

type TodoInterface interface {
	// Create inserts a new, not completed todo into the list.
	//
	// # Returns
	//
	// - error: ErrInvalidArgument if description is blank,
	// ErrMissing if the list does not exist.
	Create(ctx context.Context, listId int, description string) (*Todo, error)

	// Find returns todos in the list, ordered by id.
	Find(ctx context.Context, listId int) ([]Todo, error)

	// SetCompleted updates completion of the todo.
	//
	// # Returns
	//
	// - error: ErrMissing if there is no such todo.
	SetCompleted(ctx context.Context, id int, completed bool) error

	// Delete removes the todo.
	//
	// # Returns
	//
	// - error: ErrMissing if there is no such todo.
	Delete(ctx context.Context, id int) error
}
