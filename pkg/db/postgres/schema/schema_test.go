package schema_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ragamarkely/todo-app/pkg/db/postgres/pool/testenv"
	kpgschema "github.com/ragamarkely/todo-app/pkg/db/postgres/schema"
	"github.com/ragamarkely/todo-app/pkg/utils/try"
)

// copyRepository copies the schema repository into a temporary directory.
func copyRepository(t *testing.T) string {
	t.Helper()
	dest := t.TempDir()
	src := testenv.SchemaRepository()

	if err := filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := try.To(filepath.Rel(src, path)).OrFatal(t)
		if d.IsDir() {
			return os.MkdirAll(filepath.Join(dest, rel), 0o755)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dest, rel), content, 0o644)
	}); err != nil {
		t.Fatal(err)
	}
	return dest
}

func TestSchema_Upgrade(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	t.Run("upgrading twice keeps the latest version", func(t *testing.T) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)

		testee := kpgschema.New(pool, testenv.SchemaRepository())
		if err := testee.Upgrade(ctx); err != nil {
			t.Fatal(err)
		}
		if err := testee.Upgrade(ctx); err != nil {
			t.Fatal(err)
		}

		if got := try.To(testee.Version(ctx)).OrFatal(t); got != 1 {
			t.Errorf("version: want 1, got %d", got)
		}
	})

	t.Run("Null schema cannot upgrade but tells version", func(t *testing.T) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)

		testee := kpgschema.Null(pool)
		if err := testee.Upgrade(ctx); err == nil {
			t.Error("upgrade should fail")
		}
		if got := try.To(testee.Version(ctx)).OrFatal(t); got != 1 {
			t.Errorf("version: want 1, got %d", got)
		}
	})
}

func TestSchema_Context(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	t.Run("context is alive while the schema is latest", func(t *testing.T) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)
		repo := copyRepository(t)

		testee := kpgschema.New(pool, repo)
		sctx, cancel := testee.Context(ctx)
		defer cancel()

		select {
		case <-sctx.Done():
			t.Fatalf("context is done: %v", context.Cause(sctx))
		case <-time.After(200 * time.Millisecond):
		}
	})

	t.Run("context is cancelled when a newer version is placed", func(t *testing.T) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)
		repo := copyRepository(t)

		testee := kpgschema.New(pool, repo)
		sctx, cancel := testee.Context(ctx)
		defer cancel()

		if err := os.Mkdir(filepath.Join(repo, "2"), 0o755); err != nil {
			t.Fatal(err)
		}

		select {
		case <-sctx.Done():
			if context.Cause(sctx) == nil {
				t.Error("cause should be told")
			}
		case <-time.After(5 * time.Second):
			t.Fatal("context is not cancelled")
		}
	})
}
