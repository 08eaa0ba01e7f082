package testhelpers

import (
	"context"
	"testing"

	kdb "github.com/ragamarkely/todo-app/pkg/db"
	kpool "github.com/ragamarkely/todo-app/pkg/db/postgres/pool"
)

// Given inserts lists and todos as they are, ignoring their ids.
//
// # Returns
//
// lists and todos with ids assigned by the database. ListId of todos are
// indexes of lists, and they are replaced with actual ids.
func Given(
	ctx context.Context, t *testing.T, conn kpool.Queryer,
	lists []kdb.TodoList, todos []kdb.Todo,
) ([]kdb.TodoList, []kdb.Todo) {
	t.Helper()

	insertedLists := make([]kdb.TodoList, 0, len(lists))
	for _, l := range lists {
		if err := conn.QueryRow(
			ctx,
			`insert into "todolists" ("name", "completed") values ($1, $2) returning "id"`,
			l.Name, l.Completed,
		).Scan(&l.Id); err != nil {
			t.Fatal(err)
		}
		insertedLists = append(insertedLists, l)
	}

	insertedTodos := make([]kdb.Todo, 0, len(todos))
	for _, td := range todos {
		td.ListId = insertedLists[td.ListId].Id
		if err := conn.QueryRow(
			ctx,
			`insert into "todos" ("description", "completed", "list_id") values ($1, $2, $3) returning "id"`,
			td.Description, td.Completed, td.ListId,
		).Scan(&td.Id); err != nil {
			t.Fatal(err)
		}
		insertedTodos = append(insertedTodos, td)
	}

	return insertedLists, insertedTodos
}

// AllLists reads "todolists" ordered by id.
func AllLists(ctx context.Context, t *testing.T, conn kpool.Queryer) []kdb.TodoList {
	t.Helper()

	rows, err := conn.Query(ctx, `select "id", "name", "completed" from "todolists" order by "id"`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	ret := []kdb.TodoList{}
	for rows.Next() {
		var l kdb.TodoList
		if err := rows.Scan(&l.Id, &l.Name, &l.Completed); err != nil {
			t.Fatal(err)
		}
		ret = append(ret, l)
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err)
	}
	return ret
}

// AllTodos reads "todos" ordered by id.
func AllTodos(ctx context.Context, t *testing.T, conn kpool.Queryer) []kdb.Todo {
	t.Helper()

	rows, err := conn.Query(
		ctx, `select "id", "description", "completed", "list_id" from "todos" order by "id"`,
	)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	ret := []kdb.Todo{}
	for rows.Next() {
		var td kdb.Todo
		if err := rows.Scan(&td.Id, &td.Description, &td.Completed, &td.ListId); err != nil {
			t.Fatal(err)
		}
		ret = append(ret, td)
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err)
	}
	return ret
}
