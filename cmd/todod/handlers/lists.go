package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apilists "github.com/ragamarkely/todo-app/api-types/lists"
	apitodos "github.com/ragamarkely/todo-app/api-types/todos"
	binderr "github.com/ragamarkely/todo-app/pkg/api-types-binding/errors"
	bindlists "github.com/ragamarkely/todo-app/pkg/api-types-binding/lists"
	kdb "github.com/ragamarkely/todo-app/pkg/db"
)

func CreateListHandler(dblist kdb.ListInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(apilists.CreateRequest)
		if err := bindJSON(c, req); err != nil {
			return err
		}
		if req.NewList == nil {
			return binderr.BadRequest(`"new_list" is required`, nil)
		}

		list, err := dblist.Create(c.Request().Context(), *req.NewList)
		if err != nil {
			if errors.Is(err, kdb.ErrInvalidArgument) {
				return binderr.BadRequest(`"new_list" should not be blank`, err)
			}
			return binderr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, bindlists.ComposeDetail(*list))
	}
}

// SetListCompletedHandler updates completion of a list and its todos,
// then redirects to "/".
func SetListCompletedHandler(dblist kdb.ListInterface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathId(c, param)
		if err != nil {
			return err
		}

		req := new(apilists.SetCompletedRequest)
		if err := bindJSON(c, req); err != nil {
			return err
		}
		if req.Completed == nil {
			return binderr.BadRequest(`"completed" is required`, nil)
		}

		if err := dblist.SetCompleted(c.Request().Context(), id, *req.Completed); err != nil {
			if errors.Is(err, kdb.ErrMissing) {
				return binderr.NotFound("the list is not found", err)
			}
			return binderr.InternalServerError(err)
		}

		return c.Redirect(http.StatusFound, "/")
	}
}

// DeleteListHandler deletes a list and its todos.
//
// Deleting a list which does not exist is not an error.
func DeleteListHandler(dblist kdb.ListInterface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathId(c, param)
		if err != nil {
			return err
		}

		if err := dblist.Delete(c.Request().Context(), id); err != nil {
			if errors.Is(err, kdb.ErrMissing) {
				c.Logger().Debugf("list %d to be deleted is not found", id)
			} else {
				return binderr.InternalServerError(err)
			}
		}

		return c.JSON(http.StatusOK, apitodos.Deleted{Success: true})
	}
}
