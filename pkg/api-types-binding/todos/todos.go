package todos

import (
	apitodos "github.com/ragamarkely/todo-app/api-types/todos"
	kdb "github.com/ragamarkely/todo-app/pkg/db"
)

func ComposeDetail(t kdb.Todo) apitodos.Detail {
	return apitodos.Detail{
		Id:          t.Id,
		Completed:   t.Completed,
		Description: t.Description,
	}
}
