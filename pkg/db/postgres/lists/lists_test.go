package lists_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	kdb "github.com/ragamarkely/todo-app/pkg/db"
	kpglists "github.com/ragamarkely/todo-app/pkg/db/postgres/lists"
	"github.com/ragamarkely/todo-app/pkg/db/postgres/pool/testenv"
	th "github.com/ragamarkely/todo-app/pkg/db/postgres/testhelpers"
	"github.com/ragamarkely/todo-app/pkg/utils/try"
)

func TestList_Create(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	t.Run("it inserts a list which is not completed", func(t *testing.T) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)
		conn := try.To(pool.Acquire(ctx)).OrFatal(t)
		defer conn.Release()

		testee := kpglists.New(pool)
		got := try.To(testee.Create(ctx, "  groceries ")).OrFatal(t)

		want := []kdb.TodoList{{Id: got.Id, Name: "groceries", Completed: false}}
		if diff := cmp.Diff(want, th.AllLists(ctx, t, conn)); diff != "" {
			t.Errorf("lists (-want +got):\n%s", diff)
		}
		if !got.Equal(&want[0]) {
			t.Errorf("returned list: want %+v, got %+v", want[0], got)
		}
	})

	t.Run("it rejects a blank name without inserting", func(t *testing.T) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)
		conn := try.To(pool.Acquire(ctx)).OrFatal(t)
		defer conn.Release()

		testee := kpglists.New(pool)
		if _, err := testee.Create(ctx, " "); !errors.Is(err, kdb.ErrInvalidArgument) {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := th.AllLists(ctx, t, conn); len(got) != 0 {
			t.Errorf("list is inserted: %+v", got)
		}
	})
}

func TestList_GetAndFind(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)
	ctx := context.Background()
	pool := poolBroaker.GetPool(ctx, t)
	conn := try.To(pool.Acquire(ctx)).OrFatal(t)
	defer conn.Release()

	lists, _ := th.Given(
		ctx, t, conn,
		[]kdb.TodoList{
			{Name: "work", Completed: true},
			{Name: "home"},
			{Name: "garden"},
		},
		nil,
	)

	testee := kpglists.New(pool)

	t.Run("Get returns the list", func(t *testing.T) {
		got := try.To(testee.Get(ctx, lists[1].Id)).OrFatal(t)
		if !got.Equal(&lists[1]) {
			t.Errorf("want %+v, got %+v", lists[1], got)
		}
	})

	t.Run("Get reports missing list", func(t *testing.T) {
		if _, err := testee.Get(ctx, lists[2].Id+100); !errors.Is(err, kdb.ErrMissing) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Find returns all lists ordered by id", func(t *testing.T) {
		got := try.To(testee.Find(ctx)).OrFatal(t)
		if diff := cmp.Diff(lists, got); diff != "" {
			t.Errorf("lists (-want +got):\n%s", diff)
		}
	})
}

func TestList_SetCompleted(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	for name, completed := range map[string]bool{
		"completing": true, "uncompleting": false,
	} {
		t.Run(name+" a list changes the list and all of its todos", func(t *testing.T) {
			ctx := context.Background()
			pool := poolBroaker.GetPool(ctx, t)
			conn := try.To(pool.Acquire(ctx)).OrFatal(t)
			defer conn.Release()

			lists, todos := th.Given(
				ctx, t, conn,
				[]kdb.TodoList{{Name: "target", Completed: !completed}, {Name: "other", Completed: !completed}},
				[]kdb.Todo{
					{Description: "a", Completed: !completed, ListId: 0},
					{Description: "b", Completed: completed, ListId: 0},
					{Description: "c", Completed: !completed, ListId: 1},
				},
			)

			testee := kpglists.New(pool)
			if err := testee.SetCompleted(ctx, lists[0].Id, completed); err != nil {
				t.Fatal(err)
			}

			wantLists := []kdb.TodoList{lists[0], lists[1]}
			wantLists[0].Completed = completed
			if diff := cmp.Diff(wantLists, th.AllLists(ctx, t, conn)); diff != "" {
				t.Errorf("lists (-want +got):\n%s", diff)
			}

			wantTodos := []kdb.Todo{todos[0], todos[1], todos[2]}
			wantTodos[0].Completed = completed
			wantTodos[1].Completed = completed
			if diff := cmp.Diff(wantTodos, th.AllTodos(ctx, t, conn)); diff != "" {
				t.Errorf("todos (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("missing list is reported and nothing changes", func(t *testing.T) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)
		conn := try.To(pool.Acquire(ctx)).OrFatal(t)
		defer conn.Release()

		lists, _ := th.Given(ctx, t, conn, []kdb.TodoList{{Name: "only"}}, nil)

		testee := kpglists.New(pool)
		if err := testee.SetCompleted(ctx, lists[0].Id+1, true); !errors.Is(err, kdb.ErrMissing) {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(lists, th.AllLists(ctx, t, conn)); diff != "" {
			t.Errorf("lists (-want +got):\n%s", diff)
		}
	})
}

func TestList_Delete(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	t.Run("it deletes the list and its todos", func(t *testing.T) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)
		conn := try.To(pool.Acquire(ctx)).OrFatal(t)
		defer conn.Release()

		lists, todos := th.Given(
			ctx, t, conn,
			[]kdb.TodoList{{Name: "to be deleted"}, {Name: "kept"}},
			[]kdb.Todo{
				{Description: "a", ListId: 0},
				{Description: "b", ListId: 1},
				{Description: "c", ListId: 0},
			},
		)

		testee := kpglists.New(pool)
		if err := testee.Delete(ctx, lists[0].Id); err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff(lists[1:], th.AllLists(ctx, t, conn)); diff != "" {
			t.Errorf("lists (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]kdb.Todo{todos[1]}, th.AllTodos(ctx, t, conn)); diff != "" {
			t.Errorf("todos (-want +got):\n%s", diff)
		}
	})

	t.Run("missing list is reported", func(t *testing.T) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)

		testee := kpglists.New(pool)
		if err := testee.Delete(ctx, 1); !errors.Is(err, kdb.ErrMissing) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("it waits for a todo being inserted, and deletes it too", func(t *testing.T) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)
		conn := try.To(pool.Acquire(ctx)).OrFatal(t)
		defer conn.Release()

		lists, _ := th.Given(ctx, t, conn, []kdb.TodoList{{Name: "busy"}}, nil)

		// a todo is inserted but not committed yet.
		inserting := try.To(pool.Begin(ctx)).OrFatal(t)
		defer inserting.Rollback(ctx)
		if _, err := inserting.Exec(
			ctx,
			`insert into "todos" ("description", "list_id") values ('late', $1)`,
			lists[0].Id,
		); err != nil {
			t.Fatal(err)
		}

		testee := kpglists.New(pool)
		done := make(chan error, 1)
		go func() {
			defer close(done)
			done <- testee.Delete(ctx, lists[0].Id)
		}()

		select {
		case err := <-done:
			t.Fatalf("Delete does not wait for the inserting transaction: %v", err)
		case <-time.After(200 * time.Millisecond):
		}

		if err := inserting.Commit(ctx); err != nil {
			t.Fatal(err)
		}

		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("Delete does not finish")
		}

		if got := th.AllLists(ctx, t, conn); len(got) != 0 {
			t.Errorf("list remains: %+v", got)
		}
		if got := th.AllTodos(ctx, t, conn); len(got) != 0 {
			t.Errorf("todos remain: %+v", got)
		}
	})
}
