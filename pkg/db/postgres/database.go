package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	kdb "github.com/ragamarkely/todo-app/pkg/db"
	kpglists "github.com/ragamarkely/todo-app/pkg/db/postgres/lists"
	kpool "github.com/ragamarkely/todo-app/pkg/db/postgres/pool"
	kpgschema "github.com/ragamarkely/todo-app/pkg/db/postgres/schema"
	kpgtodos "github.com/ragamarkely/todo-app/pkg/db/postgres/todos"
	xe "github.com/ragamarkely/todo-app/pkg/errors"
)

type todoDBPostgres struct {
	pool   kpool.Pool
	lists  kdb.ListInterface
	todos  kdb.TodoInterface
	schema kdb.SchemaInterface
}

type Config struct {
	SchemaRepository string
}

func DefaultConfig() Config {
	return Config{}
}

type Option func(*Config) *Config

func WithSchemaRepository(repository string) Option {
	return func(c *Config) *Config {
		c.SchemaRepository = repository
		return c
	}
}

func New(
	ctx context.Context,
	url string,
	options ...Option,
) (kdb.TodoDatabase, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	return Attach(kpool.Wrap(pool), options...), nil
}

// Attach builds TodoDatabase over a pool which is already connected.
func Attach(p kpool.Pool, options ...Option) kdb.TodoDatabase {
	c := DefaultConfig()
	for _, option := range options {
		c = *option(&c)
	}

	var schema kdb.SchemaInterface = kpgschema.Null(p)
	if c.SchemaRepository != "" {
		schema = kpgschema.New(p, c.SchemaRepository)
	}

	return &todoDBPostgres{
		pool:   p,
		lists:  kpglists.New(p),
		todos:  kpgtodos.New(p),
		schema: schema,
	}
}

func (k *todoDBPostgres) Lists() kdb.ListInterface {
	return k.lists
}

func (k *todoDBPostgres) Todos() kdb.TodoInterface {
	return k.todos
}

func (k *todoDBPostgres) Schema() kdb.SchemaInterface {
	return k.schema
}

func (k *todoDBPostgres) Ping(ctx context.Context) error {
	return k.pool.Ping(ctx)
}

func (k *todoDBPostgres) Close() error {
	k.pool.Close()
	return nil
}
