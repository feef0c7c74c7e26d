package ast

import "github.com/leapstack-labs/pyemit/pkg/modtree"

// Module is one generated Python source file.
type Module struct {
	// Path is the declared output location, e.g. "pkg/sub/mod.py".
	Path string
	Body []Stmt
}

var _ modtree.Program = (*Module)(nil)

// OutputPath implements modtree.Program.
func (m *Module) OutputPath() string { return m.Path }

// Exports implements modtree.Program. It walks module scope once, looking
// through if statements, since both branches bind at module scope.
func (m *Module) Exports() []modtree.Export {
	var out []modtree.Export
	walkModuleScope(m.Body, func(s Stmt) {
		switch s := s.(type) {
		case *FunctionDef:
			out = append(out, modtree.Export{Name: s.Name})
		case *ClassDef:
			out = append(out, modtree.Export{Name: s.Name})
		case *Assign:
			for _, t := range s.Targets {
				out = appendTargets(out, t)
			}
		case *AugAssign:
			out = appendTargets(out, s.Target)
		case *Import:
			for _, a := range s.Names {
				name := a.AsName
				if name == "" {
					name = firstName(a)
				}
				if name != "" {
					out = append(out, modtree.Export{Name: name, Imported: true})
				}
			}
		case *ImportFrom:
			for _, a := range s.Names {
				if a.Name == "*" {
					continue
				}
				out = append(out, modtree.Export{Name: a.Bound(), Imported: true})
			}
		case *Delete:
			for _, t := range s.Targets {
				if n, ok := t.(*Name); ok {
					out = append(out, modtree.Export{Name: n.ID, Drop: true})
				}
			}
		}
	})
	return out
}

// Imports implements modtree.Program.
func (m *Module) Imports() []modtree.Import {
	var out []modtree.Import
	walkModuleScope(m.Body, func(s Stmt) {
		if s, ok := s.(*ImportFrom); ok {
			for _, a := range s.Names {
				if a.Name == "*" {
					continue
				}
				out = append(out, modtree.Import{Level: s.Level, Module: s.Module, Name: a.Name})
			}
		}
	})
	return out
}

func walkModuleScope(body []Stmt, fn func(Stmt)) {
	for _, s := range body {
		fn(s)
		if s, ok := s.(*If); ok {
			walkModuleScope(s.Body, fn)
			walkModuleScope(s.OrElse, fn)
		}
	}
}

func appendTargets(out []modtree.Export, target Expr) []modtree.Export {
	switch t := target.(type) {
	case *Name:
		out = append(out, modtree.Export{Name: t.ID})
	case *Tuple:
		for _, e := range t.Elts {
			out = appendTargets(out, e)
		}
	case *List:
		for _, e := range t.Elts {
			out = appendTargets(out, e)
		}
	case *Starred:
		out = appendTargets(out, t.Value)
	}
	return out
}

// firstName is the name "import a.b.c" binds: a.
func firstName(a ModuleAlias) string {
	names := a.Module.Names()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
