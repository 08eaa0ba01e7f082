package db

import (
	"context"
	"errors"
)

// requested record is not found.
var ErrMissing = errors.New("missing")

// requested record is found more than expected.
var ErrTooMuch = errors.New("too much")

// argument does not satisfy the constraints of the table.
var ErrInvalidArgument = errors.New("invalid argument")

type TodoDatabase interface {
	Lists() ListInterface
	Todos() TodoInterface
	Schema() SchemaInterface

	// Ping checks the database is reachable.
	Ping(ctx context.Context) error
	Close() error
}

type SchemaInterface interface {
	// Version returns the schema version applied to the database.
	//
	// 0 means no schema is applied.
	Version(ctx context.Context) (int, error)

	// Upgrade applies every schema version newer than the current one.
	Upgrade(ctx context.Context) error

	// Context returns a context which is cancelled when the database schema
	// gets outdated.
	Context(ctx context.Context) (context.Context, context.CancelFunc)
}
