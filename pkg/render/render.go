package render

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/flosch/pongo2/v6"
	"github.com/labstack/echo/v4"

	kdb "github.com/ragamarkely/todo-app/pkg/db"
	xe "github.com/ragamarkely/todo-app/pkg/errors"
)

//go:embed templates
var templates embed.FS

// name of the page showing lists and todos in the active list.
const IndexPage = "index.html"

// Renderer renders pages with pongo2. It implements echo.Renderer.
type Renderer struct {
	set *pongo2.TemplateSet
}

var _ echo.Renderer = &Renderer{}

type Option func(*Renderer) *Renderer

// WithDebug disables template caching, so that changes of templates take effect immediately.
func WithDebug(debug bool) Option {
	return func(r *Renderer) *Renderer {
		r.set.Debug = debug
		return r
	}
}

// New creates Renderer with templates embedded in this package.
func New(options ...Option) (*Renderer, error) {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return NewWithFS(sub, options...), nil
}

// NewWithFS creates Renderer with templates in files.
func NewWithFS(files fs.FS, options ...Option) *Renderer {
	r := &Renderer{set: pongo2.NewSet("todo", pongo2.NewFSLoader(files))}
	for _, opt := range options {
		r = opt(r)
	}
	return r
}

// IndexContext builds template context for IndexPage.
//
// activeList can be nil when there are no lists to show.
func IndexContext(lists []kdb.TodoList, activeList *kdb.TodoList, todos []kdb.Todo) pongo2.Context {
	ctx := pongo2.Context{
		"lists":       lists,
		"active_list": nil,
		"todos":       todos,
	}
	if activeList != nil {
		ctx["active_list"] = activeList
	}
	return ctx
}

// Render writes the template with name.
//
// data should be pongo2.Context or map[string]any.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	var ctx pongo2.Context
	switch d := data.(type) {
	case nil:
		ctx = pongo2.Context{}
	case pongo2.Context:
		ctx = d
	case map[string]any:
		ctx = pongo2.Context(d)
	default:
		return fmt.Errorf("render: unsupported data for %s: %T", name, data)
	}

	tpl, err := r.set.FromCache(name)
	if err != nil {
		return xe.WrapWithNote(name, err)
	}
	if err := tpl.ExecuteWriter(ctx, w); err != nil {
		return xe.WrapWithNote(name, err)
	}
	return nil
}
