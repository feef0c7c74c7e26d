// Package importgraph records which generated modules import from which,
// and answers ordering and cycle questions about those dependencies.
package importgraph

import (
	"fmt"
	"slices"
	"sort"

	"github.com/leapstack-labs/pyemit/pkg/modtree"
)

// Graph is a directed graph of module names. An edge from a to b means a
// imports from b.
type Graph struct {
	nodes      map[string]struct{}
	imports    map[string][]string // importer -> imported modules
	importedBy map[string][]string // imported module -> importers
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:      make(map[string]struct{}),
		imports:    make(map[string][]string),
		importedBy: make(map[string][]string),
	}
}

// FromTree builds the graph from a tree whose imports were already analyzed.
// Every node with a program becomes a vertex.
func FromTree(t *modtree.Tree) *Graph {
	g := New()
	for n := range t.All() {
		if n.Program() != nil {
			g.AddModule(n.ID().String())
		}
	}
	for n := range t.All() {
		for _, ref := range n.Imports() {
			g.AddImport(n.ID().String(), ref.Module.String())
		}
	}
	return g
}

// AddModule adds a module. Adding it twice is a no-op.
func (g *Graph) AddModule(name string) {
	if _, ok := g.nodes[name]; ok {
		return
	}
	g.nodes[name] = struct{}{}
	g.imports[name] = []string{}
	g.importedBy[name] = []string{}
}

// AddImport records that importer imports from imported, adding either
// module if missing. A module importing from itself is ignored.
func (g *Graph) AddImport(importer, imported string) {
	if importer == imported {
		return
	}
	g.AddModule(importer)
	g.AddModule(imported)
	if !slices.Contains(g.imports[importer], imported) {
		g.imports[importer] = append(g.imports[importer], imported)
	}
	if !slices.Contains(g.importedBy[imported], importer) {
		g.importedBy[imported] = append(g.importedBy[imported], importer)
	}
}

// Len returns the number of modules.
func (g *Graph) Len() int { return len(g.nodes) }

// Imports returns the modules name imports from directly, sorted.
func (g *Graph) Imports(name string) []string {
	return sorted(g.imports[name])
}

// ImportedBy returns the modules importing from name directly, sorted.
func (g *Graph) ImportedBy(name string) []string {
	return sorted(g.importedBy[name])
}

func (g *Graph) names() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FindCycle returns an import cycle as a path that starts and ends with the
// same module, or nil if there is none. The search order is deterministic.
func (g *Graph) FindCycle() []string {
	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	from := make(map[string]string)

	var cycle []string
	var dfs func(id string) bool
	dfs = func(id string) bool {
		visited[id] = true
		onStack[id] = true

		for _, next := range sorted(g.imports[id]) {
			if !visited[next] {
				from[next] = id
				if dfs(next) {
					return true
				}
			} else if onStack[next] {
				cycle = []string{next}
				for cur := id; cur != next; cur = from[cur] {
					cycle = append([]string{cur}, cycle...)
				}
				cycle = append([]string{next}, cycle...)
				return true
			}
		}

		onStack[id] = false
		return false
	}

	for _, id := range g.names() {
		if !visited[id] && dfs(id) {
			return cycle
		}
	}
	return nil
}

// Order returns every module with the modules it imports from listed
// before it. It fails if the imports form a cycle.
func (g *Graph) Order() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, &CycleError{Path: cycle}
	}

	visited := make(map[string]bool)
	var out []string
	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, dep := range sorted(g.imports[id]) {
			visit(dep)
		}
		out = append(out, id)
	}
	for _, id := range g.names() {
		visit(id)
	}
	return out, nil
}

// Dependencies returns every module name imports from, directly or not.
func (g *Graph) Dependencies(name string) []string {
	return g.reach(name, g.imports)
}

// Dependents returns every module that imports from name, directly or not.
func (g *Graph) Dependents(name string) []string {
	return g.reach(name, g.importedBy)
}

func (g *Graph) reach(start string, edges map[string][]string) []string {
	seen := make(map[string]bool)
	var walk func(id string)
	walk = func(id string) {
		for _, next := range edges[id] {
			if !seen[next] {
				seen[next] = true
				walk(next)
			}
		}
	}
	walk(start)
	delete(seen, start)

	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// CycleError reports circular imports.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("import cycle: %v", e.Path)
}

func sorted(in []string) []string {
	out := slices.Clone(in)
	sort.Strings(out)
	return out
}
