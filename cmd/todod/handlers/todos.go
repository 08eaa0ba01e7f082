package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apitodos "github.com/ragamarkely/todo-app/api-types/todos"
	binderr "github.com/ragamarkely/todo-app/pkg/api-types-binding/errors"
	bindtodos "github.com/ragamarkely/todo-app/pkg/api-types-binding/todos"
	kdb "github.com/ragamarkely/todo-app/pkg/db"
)

func CreateTodoHandler(dbtodo kdb.TodoInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(apitodos.CreateRequest)
		if err := bindJSON(c, req); err != nil {
			return err
		}
		if req.Description == nil {
			return binderr.BadRequest(`"description" is required`, nil)
		}
		if req.ListId == nil {
			return binderr.BadRequest(`"list_id" is required`, nil)
		}
		if !validId(*req.ListId) {
			return binderr.BadRequest(`"list_id" should be a positive integer up to 2147483647`, nil)
		}

		todo, err := dbtodo.Create(c.Request().Context(), *req.ListId, *req.Description)
		if err != nil {
			switch {
			case errors.Is(err, kdb.ErrInvalidArgument):
				return binderr.BadRequest(`"description" should not be blank`, err)
			case errors.Is(err, kdb.ErrMissing):
				return binderr.BadRequest(`list pointed by "list_id" is not found`, err)
			}
			return binderr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, bindtodos.ComposeDetail(*todo))
	}
}

// SetTodoCompletedHandler updates completion of a todo, then redirects to "/".
func SetTodoCompletedHandler(dbtodo kdb.TodoInterface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathId(c, param)
		if err != nil {
			return err
		}

		req := new(apitodos.SetCompletedRequest)
		if err := bindJSON(c, req); err != nil {
			return err
		}
		if req.Completed == nil {
			return binderr.BadRequest(`"completed" is required`, nil)
		}

		if err := dbtodo.SetCompleted(c.Request().Context(), id, *req.Completed); err != nil {
			if errors.Is(err, kdb.ErrMissing) {
				return binderr.NotFound("the todo is not found", err)
			}
			return binderr.InternalServerError(err)
		}

		return c.Redirect(http.StatusFound, "/")
	}
}

// DeleteTodoHandler deletes a todo.
//
// Deleting a todo which does not exist is not an error.
func DeleteTodoHandler(dbtodo kdb.TodoInterface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathId(c, param)
		if err != nil {
			return err
		}

		if err := dbtodo.Delete(c.Request().Context(), id); err != nil {
			if errors.Is(err, kdb.ErrMissing) {
				c.Logger().Debugf("todo %d to be deleted is not found", id)
			} else {
				return binderr.InternalServerError(err)
			}
		}

		return c.JSON(http.StatusOK, apitodos.Deleted{Success: true})
	}
}
