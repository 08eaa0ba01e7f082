package todos

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"

	kdb "github.com/ragamarkely/todo-app/pkg/db"
	kpgerr "github.com/ragamarkely/todo-app/pkg/db/postgres/errors"
	kpool "github.com/ragamarkely/todo-app/pkg/db/postgres/pool"
	xe "github.com/ragamarkely/todo-app/pkg/errors"
)

type todoPG struct { // implements kdb.TodoInterface
	pool kpool.Pool
}

var _ kdb.TodoInterface = &todoPG{}

func New(pool kpool.Pool) *todoPG {
	return &todoPG{pool: pool}
}

func (m *todoPG) Create(ctx context.Context, listId int, description string) (*kdb.Todo, error) {
	description, err := kdb.ValidateDescription(description)
	if err != nil {
		return nil, err
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	todo := new(kdb.Todo)
	if err := tx.QueryRow(
		ctx,
		`insert into "todos" ("description", "completed", "list_id")
		values ($1, false, $2)
		returning "id", "description", "completed", "list_id"`,
		description, listId,
	).Scan(&todo.Id, &todo.Description, &todo.Completed, &todo.ListId); err != nil {
		if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) {
			if pgerr.Code == pgerrcode.ForeignKeyViolation {
				return nil, xe.WrapWithNote(
					fmt.Sprintf("list %d for new todo", listId),
					kpgerr.Missing{Table: "todolists", Identity: fmt.Sprint(listId)},
				)
			}
		}
		return nil, xe.Wrap(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, xe.Wrap(err)
	}
	return todo, nil
}

func (m *todoPG) Find(ctx context.Context, listId int) ([]kdb.Todo, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`select "id", "description", "completed", "list_id" from "todos"
		where "list_id" = $1 order by "id"`,
		listId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	todos := []kdb.Todo{}
	for rows.Next() {
		var t kdb.Todo
		if err := rows.Scan(&t.Id, &t.Description, &t.Completed, &t.ListId); err != nil {
			return nil, xe.Wrap(err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}
	return todos, nil
}

func (m *todoPG) SetCompleted(ctx context.Context, id int, completed bool) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	ctag, err := tx.Exec(
		ctx,
		`update "todos" set "completed" = $2 where "id" = $1`,
		id, completed,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if err := kpgerr.AffectedOne("todos", id, ctag.RowsAffected()); err != nil {
		return xe.Wrap(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (m *todoPG) Delete(ctx context.Context, id int) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	ctag, err := tx.Exec(ctx, `delete from "todos" where "id" = $1`, id)
	if err != nil {
		return xe.Wrap(err)
	}
	if err := kpgerr.AffectedOne("todos", id, ctag.RowsAffected()); err != nil {
		return xe.Wrap(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}
