package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/gommon/log"

	kdb "github.com/ragamarkely/todo-app/pkg/db"
	kpg "github.com/ragamarkely/todo-app/pkg/db/postgres"
	"github.com/ragamarkely/todo-app/pkg/utils/retry"
)

// connectDatabase connects to the database, retrying up to wait.
//
// With wait <= 0, it tries once. A malformed uri is not retried.
func connectDatabase(ctx context.Context, uri string, wait time.Duration, options ...kpg.Option) (kdb.TodoDatabase, error) {
	if _, err := pgxpool.ParseConfig(uri); err != nil {
		return nil, fmt.Errorf("malformed database uri: %w", err)
	}
	if wait <= 0 {
		return kpg.New(ctx, uri, options...)
	}

	wctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	return retry.Blocking(
		wctx, retry.ExponentialBackoff(500*time.Millisecond, 1.5),
		func() (kdb.TodoDatabase, error) {
			db, err := kpg.New(wctx, uri, options...)
			if err != nil {
				log.Warnf("database is not ready: %s", err)
				return nil, fmt.Errorf("%w: %w", retry.ErrRetry, err)
			}
			return db, nil
		},
	)
}
