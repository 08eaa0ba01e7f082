package lists

import (
	apilists "github.com/ragamarkely/todo-app/api-types/lists"
	kdb "github.com/ragamarkely/todo-app/pkg/db"
)

func ComposeDetail(l kdb.TodoList) apilists.Detail {
	return apilists.Detail{
		Id:        l.Id,
		Completed: l.Completed,
		Name:      l.Name,
	}
}
