// Package emitter places generated Python modules in a package tree,
// analyzes cross-module imports and renders each node to source text.
package emitter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/pyemit/internal/config"
	"github.com/leapstack-labs/pyemit/internal/importgraph"
	"github.com/leapstack-labs/pyemit/pkg/ast"
	"github.com/leapstack-labs/pyemit/pkg/format"
	"github.com/leapstack-labs/pyemit/pkg/modtree"
)

// Output is one rendered file.
type Output struct {
	// Path is the slash-separated location relative to the output root.
	Path string
	// Name is the dotted module name, empty for the root package.
	Name string
	// Source is the file content. Packages without a module render empty.
	Source string
}

// Config holds emitter configuration.
type Config struct {
	// Options holds layout and analysis options (uses config.Default() if nil)
	Options *config.Config
	// Logger is the structured logger (optional, text to stderr if nil).
	// Records below Options.LogLevel are dropped either way.
	Logger *slog.Logger
}

// Emitter collects modules and renders them.
type Emitter struct {
	opts   *config.Config
	logger *slog.Logger
	tree   *modtree.Tree
	graph  *importgraph.Graph
}

// New creates an emitter with an empty module tree.
func New(cfg Config) (*Emitter, error) {
	opts := cfg.Options
	if opts == nil {
		opts = config.Default()
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid emitter options: %w", err)
	}
	lvl, err := opts.Level()
	if err != nil {
		return nil, fmt.Errorf("invalid emitter options: %w", err)
	}

	var logger *slog.Logger
	if cfg.Logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	} else {
		logger = slog.New(&levelHandler{min: lvl, next: cfg.Logger.Handler()})
	}

	return &Emitter{
		opts:   opts,
		logger: logger,
		tree:   modtree.New(opts.TreeOptions()),
	}, nil
}

// Tree returns the module tree built so far.
func (e *Emitter) Tree() *modtree.Tree { return e.tree }

// Graph returns the cross-module import graph from the last Build, or nil.
func (e *Emitter) Graph() *importgraph.Graph { return e.graph }

// Add attaches m at the node named by its output path.
func (e *Emitter) Add(m *ast.Module) error {
	if m == nil {
		return fmt.Errorf("nil module")
	}
	n, err := e.tree.SetProgram(m)
	if err != nil {
		return fmt.Errorf("failed to add module %s: %w", m.Path, err)
	}
	e.logger.Debug("module added",
		slog.String("path", m.Path),
		slog.String("module", n.ID().String()),
		slog.Int("statements", len(m.Body)),
	)
	return nil
}

// Build analyzes imports across the tree and renders every node in
// breadth-first order.
func (e *Emitter) Build(ctx context.Context) ([]Output, error) {
	if err := e.tree.AnalyzeImports(e.opts.ExcludeImportsFromExports); err != nil {
		return nil, fmt.Errorf("import analysis failed: %w", err)
	}
	e.graph = importgraph.FromTree(e.tree)
	if cycle := e.graph.FindCycle(); cycle != nil {
		// not fatal: Python resolves many cycles at runtime
		e.logger.Warn("circular from-imports between generated modules",
			slog.Any("cycle", cycle),
		)
	}

	entries := e.tree.Entries()
	outputs := make([]Output, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out := Output{Path: entry.Path}
		if entry.HasName {
			out.Name = entry.Name.String()
		}

		if entry.Program != nil {
			m, ok := entry.Program.(*ast.Module)
			if !ok {
				return nil, fmt.Errorf("%s: unsupported program type %T", entry.Path, entry.Program)
			}
			src, err := format.Module(m)
			if err != nil {
				return nil, fmt.Errorf("failed to render %s: %w", entry.Path, err)
			}
			out.Source = src
		}

		e.logger.Debug("module rendered",
			slog.String("path", out.Path),
			slog.String("module", out.Name),
			slog.Int("bytes", len(out.Source)),
		)
		outputs = append(outputs, out)
	}

	e.logger.Info("emit complete", slog.Int("files", len(outputs)))
	return outputs, nil
}

// Summary renders the current tree layout as a table.
func (e *Emitter) Summary() string {
	return e.tree.Summary()
}
