package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	binderr "github.com/ragamarkely/todo-app/pkg/api-types-binding/errors"
	kdb "github.com/ragamarkely/todo-app/pkg/db"
	"github.com/ragamarkely/todo-app/pkg/render"
)

// ListPageHandler renders the page of a list: all lists, the list and its todos.
func ListPageHandler(dblist kdb.ListInterface, dbtodo kdb.TodoInterface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		ctx := c.Request().Context()

		active, err := dblist.Get(ctx, id)
		if err != nil {
			if errors.Is(err, kdb.ErrMissing) {
				return binderr.NotFound("the list is not found", err)
			}
			return binderr.InternalServerError(err)
		}

		lists, err := dblist.Find(ctx)
		if err != nil {
			return binderr.InternalServerError(err)
		}

		todos, err := dbtodo.Find(ctx, active.Id)
		if err != nil {
			return binderr.InternalServerError(err)
		}

		return c.Render(
			http.StatusOK, render.IndexPage,
			render.IndexContext(lists, active, todos),
		)
	}
}

// IndexHandler redirects to the page of the default list.
//
// When the default list does not exist, it redirects to the first list.
// When there are no lists, it renders the page without active list.
func IndexHandler(dblist kdb.ListInterface, defaultList int) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if _, err := dblist.Get(ctx, defaultList); err == nil {
			return c.Redirect(http.StatusFound, listPage(defaultList))
		} else if !errors.Is(err, kdb.ErrMissing) {
			return binderr.InternalServerError(err)
		}

		lists, err := dblist.Find(ctx)
		if err != nil {
			return binderr.InternalServerError(err)
		}
		if len(lists) != 0 {
			return c.Redirect(http.StatusFound, listPage(lists[0].Id))
		}

		return c.Render(
			http.StatusOK, render.IndexPage,
			render.IndexContext(lists, nil, nil),
		)
	}
}

func listPage(id int) string {
	return fmt.Sprintf("/lists/%d", id)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler tells the database is reachable or not.
func HealthHandler(db Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return binderr.ServiceUnavailable("database is not reachable", err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
