package db

import "context"

type TodoList struct {
	Id        int
	Name      string
	Completed bool
}

func (l *TodoList) Equal(o *TodoList) bool {
	if l == nil || o == nil {
		return l == nil && o == nil
	}
	return *l == *o
}

type ListInterface interface {
	// Create inserts a new, not completed list.
	//
	// # Returns
	//
	// - *TodoList: the inserted list.
	//
	// - error: ErrInvalidArgument if name is blank.
	Create(ctx context.Context, name string) (*TodoList, error)

	// Get returns the list with the id.
	//
	// # Returns
	//
	// - error: ErrMissing if there is no such list.
	Get(ctx context.Context, id int) (*TodoList, error)

	// Find returns all lists, ordered by id.
	Find(ctx context.Context) ([]TodoList, error)

	// SetCompleted updates completion of the list and all of its todos.
	//
	// # Returns
	//
	// - error: ErrMissing if there is no such list.
	SetCompleted(ctx context.Context, id int, completed bool) error

	// Delete removes the list together with its todos.
	//
	// # Returns
	//
	// - error: ErrMissing if there is no such list.
	Delete(ctx context.Context, id int) error
}
