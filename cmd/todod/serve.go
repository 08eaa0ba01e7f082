package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	kpg "github.com/ragamarkely/todo-app/pkg/db/postgres"
	"github.com/ragamarkely/todo-app/pkg/render"
)

func newServeCommand(flags *globalFlags) *cobra.Command {
	var loglevel string
	var debugTemplate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP server",
		Long: `Start HTTP server.

When the schema repository is given, the server stops once the repository
gets a schema newer than the database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := flags.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("loglevel") {
				conf.LogLevel = loglevel
			}

			ctx := cmd.Context()
			db, err := connectDatabase(ctx, conf.DBURI, flags.DBWait, kpg.WithSchemaRepository(conf.SchemaRepository))
			if err != nil {
				return fmt.Errorf("can not connect to database: %w", err)
			}
			defer db.Close()
			{
				ctx_, ccan := db.Schema().Context(ctx)
				defer ccan()
				ctx = ctx_
			}

			renderer, err := render.New(render.WithDebug(debugTemplate))
			if err != nil {
				return err
			}

			server := BuildServer(db, renderer, conf.DefaultList, conf.LogLevel)
			for _, r := range server.Routes() {
				server.Logger.Debugf("- mount handler: %s %s", strings.ToUpper(r.Method), r.Path)
			}

			return serve(ctx, server, ":"+conf.ServerPort)
		},
	}

	cmd.Flags().StringVar(&loglevel, "loglevel", "info", "log level. debug|info|warn|error|off")
	cmd.Flags().BoolVar(&debugTemplate, "debug-template", false, "reload templates on each request")
	return cmd
}

// serve runs server until ctx is done or the server stops.
//
// When ctx is cancelled with a cause other than context.Canceled, the cause is returned.
func serve(ctx context.Context, server *echo.Echo, address string) error {
	ch := make(chan error, 1)
	go func() {
		defer close(ch)
		if err := server.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ch <- err
		}
	}()

	var exit error
	select {
	case <-ctx.Done():
		if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
			server.Logger.Errorf("context has been done: %s", cause)
			exit = cause
		} else {
			server.Logger.Infof("context has been done: %s", ctx.Err())
		}
	case err, ok := <-ch:
		if ok && err != nil {
			server.Logger.Error("server stops with error:", err)
			return err
		}
	}

	server.Logger.Info("shutting down...")
	qctx, qcancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer qcancel()
	if err := server.Shutdown(qctx); err != nil {
		return fmt.Errorf("shutdown with error: %w", err)
	}
	return exit
}
