package lists

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	kdb "github.com/ragamarkely/todo-app/pkg/db"
	kpgerr "github.com/ragamarkely/todo-app/pkg/db/postgres/errors"
	kpool "github.com/ragamarkely/todo-app/pkg/db/postgres/pool"
	xe "github.com/ragamarkely/todo-app/pkg/errors"
)

type listPG struct { // implements kdb.ListInterface
	pool kpool.Pool
}

var _ kdb.ListInterface = &listPG{}

func New(pool kpool.Pool) *listPG {
	return &listPG{pool: pool}
}

func (l *listPG) Create(ctx context.Context, name string) (*kdb.TodoList, error) {
	name, err := kdb.ValidateName(name)
	if err != nil {
		return nil, err
	}

	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	list := new(kdb.TodoList)
	if err := tx.QueryRow(
		ctx,
		`insert into "todolists" ("name", "completed") values ($1, false)
		returning "id", "name", "completed"`,
		name,
	).Scan(&list.Id, &list.Name, &list.Completed); err != nil {
		return nil, xe.Wrap(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, xe.Wrap(err)
	}
	return list, nil
}

func (l *listPG) Get(ctx context.Context, id int) (*kdb.TodoList, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer conn.Release()

	list := new(kdb.TodoList)
	if err := conn.QueryRow(
		ctx,
		`select "id", "name", "completed" from "todolists" where "id" = $1`,
		id,
	).Scan(&list.Id, &list.Name, &list.Completed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xe.Wrap(kpgerr.AffectedOne("todolists", id, 0))
		}
		return nil, xe.Wrap(err)
	}
	return list, nil
}

func (l *listPG) Find(ctx context.Context) ([]kdb.TodoList, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`select "id", "name", "completed" from "todolists" order by "id"`,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	lists := []kdb.TodoList{}
	for rows.Next() {
		var list kdb.TodoList
		if err := rows.Scan(&list.Id, &list.Name, &list.Completed); err != nil {
			return nil, xe.Wrap(err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}
	return lists, nil
}

func (l *listPG) SetCompleted(ctx context.Context, id int, completed bool) error {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	// lock the list first, so that no todos get into it while updating.
	var locked int
	if err := tx.QueryRow(
		ctx,
		`select "id" from "todolists" where "id" = $1 for update`,
		id,
	).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return xe.Wrap(kpgerr.AffectedOne("todolists", id, 0))
		}
		return xe.Wrap(err)
	}

	if _, err := tx.Exec(
		ctx,
		`update "todolists" set "completed" = $2 where "id" = $1`,
		id, completed,
	); err != nil {
		return xe.Wrap(err)
	}
	if _, err := tx.Exec(
		ctx,
		`update "todos" set "completed" = $2 where "list_id" = $1`,
		id, completed,
	); err != nil {
		return xe.Wrap(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (l *listPG) Delete(ctx context.Context, id int) error {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	// lock the list first. todos being inserted into it are waited for,
	// and new ones can not get in until the list is gone.
	var locked int
	if err := tx.QueryRow(
		ctx,
		`select "id" from "todolists" where "id" = $1 for update`,
		id,
	).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return xe.Wrap(kpgerr.AffectedOne("todolists", id, 0))
		}
		return xe.Wrap(err)
	}

	if _, err := tx.Exec(
		ctx, `delete from "todos" where "list_id" = $1`, id,
	); err != nil {
		return xe.Wrap(err)
	}

	ctag, err := tx.Exec(ctx, `delete from "todolists" where "id" = $1`, id)
	if err != nil {
		return xe.Wrap(err)
	}
	if err := kpgerr.AffectedOne("todolists", id, ctag.RowsAffected()); err != nil {
		return xe.Wrap(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}
