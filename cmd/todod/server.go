package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ragamarkely/todo-app/cmd/todod/handlers"
	kdb "github.com/ragamarkely/todo-app/pkg/db"
	"github.com/ragamarkely/todo-app/pkg/echoutil"
)

// BuildServer creates echo server with all routes of todo app.
func BuildServer(
	db kdb.TodoDatabase,
	renderer echo.Renderer,
	defaultList int,
	loglevel string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	echoutil.SetLevel(e, loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(echoutil.LogHandlerFunc)

	{
		listId := "listId"
		e.POST("/lists/create", handlers.CreateListHandler(db.Lists()))
		e.POST("/lists/:listId/set-completed", handlers.SetListCompletedHandler(db.Lists(), listId))
		e.DELETE("/lists/:listId/deleted", handlers.DeleteListHandler(db.Lists(), listId))
		e.GET("/lists/:listId", handlers.ListPageHandler(db.Lists(), db.Todos(), listId))
	}

	{
		todoId := "todoId"
		e.POST("/todos/create", handlers.CreateTodoHandler(db.Todos()))
		e.POST("/todos/:todoId/set-completed", handlers.SetTodoCompletedHandler(db.Todos(), todoId))
		e.DELETE("/todos/:todoId/deleted", handlers.DeleteTodoHandler(db.Todos(), todoId))
	}

	e.GET("/", handlers.IndexHandler(db.Lists(), defaultList))
	e.GET("/healthz", handlers.HealthHandler(db))

	return e
}
