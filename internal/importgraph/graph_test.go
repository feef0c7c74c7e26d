package importgraph

import (
	"errors"
	"reflect"
	"testing"

	"github.com/leapstack-labs/pyemit/pkg/dotted"
	"github.com/leapstack-labs/pyemit/pkg/modtree"
)

func chain() *Graph {
	g := New()
	// app.main -> app.util -> lib.core, app.main -> lib.core
	g.AddImport("app.main", "app.util")
	g.AddImport("app.util", "lib.core")
	g.AddImport("app.main", "lib.core")
	return g
}

func TestGraph_AddImport(t *testing.T) {
	g := chain()
	g.AddImport("app.main", "app.util")
	g.AddImport("app.util", "app.util")

	if g.Len() != 3 {
		t.Errorf("expected 3 modules, got %d", g.Len())
	}
	if got := g.Imports("app.main"); !reflect.DeepEqual(got, []string{"app.util", "lib.core"}) {
		t.Errorf("unexpected imports: %v", got)
	}
	if got := g.ImportedBy("lib.core"); !reflect.DeepEqual(got, []string{"app.main", "app.util"}) {
		t.Errorf("unexpected importers: %v", got)
	}
	if got := g.Imports("app.util"); !reflect.DeepEqual(got, []string{"lib.core"}) {
		t.Errorf("self import should be ignored, got %v", got)
	}
}

func TestGraph_Order(t *testing.T) {
	g := chain()
	g.AddModule("standalone")

	order, err := g.Order()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"lib.core", "app.util", "app.main", "standalone"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("expected %v, got %v", want, order)
	}
}

func TestGraph_FindCycle(t *testing.T) {
	g := New()
	g.AddImport("a", "b")
	g.AddImport("b", "c")
	g.AddImport("c", "a")

	want := []string{"a", "b", "c", "a"}
	if got := g.FindCycle(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected cycle %v, got %v", want, got)
	}

	_, err := g.Order()
	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected CycleError, got %v", err)
	}
	if !reflect.DeepEqual(cycleErr.Path, want) {
		t.Errorf("unexpected cycle path %v", cycleErr.Path)
	}
}

func TestGraph_NoCycle(t *testing.T) {
	if cycle := chain().FindCycle(); cycle != nil {
		t.Errorf("expected no cycle, got %v", cycle)
	}
}

func TestGraph_Reach(t *testing.T) {
	g := chain()

	if got := g.Dependencies("app.main"); !reflect.DeepEqual(got, []string{"app.util", "lib.core"}) {
		t.Errorf("unexpected dependencies: %v", got)
	}
	if got := g.Dependents("lib.core"); !reflect.DeepEqual(got, []string{"app.main", "app.util"}) {
		t.Errorf("unexpected dependents: %v", got)
	}
	if got := g.Dependencies("lib.core"); len(got) != 0 {
		t.Errorf("expected no dependencies, got %v", got)
	}
}

type program struct {
	path    string
	exports []modtree.Export
	imports []modtree.Import
}

func (p *program) Exports() []modtree.Export { return p.exports }
func (p *program) Imports() []modtree.Import { return p.imports }
func (p *program) OutputPath() string { return p.path }

func TestFromTree(t *testing.T) {
	tree := modtree.New(modtree.DefaultOptions())
	programs := []*program{
		{path: "p/a.py", exports: []modtree.Export{{Name: "x"}}},
		{path: "p/b.py", imports: []modtree.Import{
			{Level: 1, Module: dotted.MustParse("a"), Name: "x"},
			{Module: dotted.MustParse("os"), Name: "path"},
		}},
	}
	for _, p := range programs {
		if _, err := tree.SetProgram(p); err != nil {
			t.Fatalf("SetProgram: %v", err)
		}
	}
	if err := tree.AnalyzeImports(false); err != nil {
		t.Fatalf("AnalyzeImports: %v", err)
	}

	g := FromTree(tree)
	if g.Len() != 2 {
		t.Errorf("expected 2 modules, got %d", g.Len())
	}
	if got := g.Imports("p.b"); !reflect.DeepEqual(got, []string{"p.a"}) {
		t.Errorf("unexpected imports: %v", got)
	}
}
