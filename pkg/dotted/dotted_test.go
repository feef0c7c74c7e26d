package dotted

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{"a", "a.b.c", ".", "..", "...", "..mod", "...pkg.mod", ""}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			id, err := Parse(in)
			require.NoError(t, err)
			assert.Equal(t, in, id.String())

			again, err := Parse(id.String())
			require.NoError(t, err)
			assert.True(t, id.Equal(again))
			assert.Equal(t, id.Parts(), again.Parts())
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"a..b", "a.", "a.class", "1x", "a.b-c", ".mod", "..a..b"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			var dErr *Error
			assert.ErrorAs(t, err, &dErr)
		})
	}
	assert.Panics(t, func() { MustParse("a..b") })
}

func TestNewRejectsMarkerAfterName(t *testing.T) {
	_, err := New(Name("a"), Up(), Name("b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relative marker after a name")

	_, err = New(Name("a"), Up())
	assert.Error(t, err)

	id, err := New(Up(), Up(), Name("a"))
	require.NoError(t, err)
	assert.Equal(t, "...a", id.String())
	assert.Equal(t, 2, id.Level())
}

func TestRendering(t *testing.T) {
	tests := []struct {
		parts []Part
		text  string
		path  []string
	}{
		{[]Part{Name("a"), Name("b")}, "a.b", []string{"a", "b"}},
		{[]Part{Up()}, ".", []string{".."}},
		{[]Part{Up(), Up()}, "..", []string{"..", ".."}},
		{[]Part{Up(), Name("a")}, "..a", []string{"..", "a"}},
		{[]Part{Up(), Name("a"), Name("b")}, "..a.b", []string{"..", "a", "b"}},
		{[]Part{Up(), Up(), Name("a")}, "...a", []string{"..", "..", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			id := MustNew(tt.parts...)
			assert.Equal(t, tt.text, id.String())
			assert.Equal(t, tt.path, id.ModulePath())

			again, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, id.Parts(), again.Parts())
		})
	}
}

func TestDot(t *testing.T) {
	base := MustParse("a.b")
	next := base.Dot("c")
	assert.Equal(t, "a.b.c", next.String())
	assert.Equal(t, "a.b", base.String(), "Dot must not mutate the receiver")
	assert.Equal(t, "..x", MustParse(".").Dot("x").String())
	assert.Panics(t, func() { base.Dot("not valid") })
}

func TestSimpleName(t *testing.T) {
	name, err := MustParse("mod").SimpleName()
	require.NoError(t, err)
	assert.Equal(t, "mod", name)

	for _, in := range []string{"a.b", "..a", "."} {
		_, err := MustParse(in).SimpleName()
		assert.Error(t, err, in)
	}
}

func TestModulePath(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, MustParse("a.b").ModulePath())
	assert.Equal(t, []string{"..", "x"}, MustParse("..x").ModulePath())
	assert.Equal(t, []string{"..", "..", "x"}, MustParse("...x").ModulePath())

	abs, err := MustParse("a.b").AbsoluteModulePath()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, abs)

	_, err = MustParse("..a").AbsoluteModulePath()
	assert.Error(t, err)
}

func TestFromFilePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a/b/c.py", "a.b.c"},
		{"a/b/__init__.py", "a.b"},
		{"__init__.py", ""},
		{"top.py", "top"},
		{"./a/b.py", "a.b"},
		{"../sibling.py", "..sibling"},
		{"../../up/two.py", "...up.two"},
		{`win\style\mod.py`, "win.style.mod"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			id, err := FromFilePath(tt.path, ".py", "__init__")
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.String())
		})
	}

	_, err := FromFilePath("a/bad-name.py", ".py", "__init__")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	assert.Negative(t, Compare(MustParse("a.b"), MustParse("a.c")))
	assert.Zero(t, Compare(MustParse("a.b"), MustParse("a.b")))
	assert.Positive(t, Compare(MustParse("b"), MustParse("a.z")))
}

func TestFind(t *testing.T) {
	tests := []struct {
		base, target string
		want         Result
	}{
		{"a.b", "a.b.c.d", Result{Relation: Descend, Next: "c"}},
		{"a.b", "a.b", Result{Relation: Identical}},
		{"a.b", "a.c.d", Result{Relation: Unrelated}},
		{"a.b.c", "a.b", Result{Relation: Unrelated}},
		{"..a", "..a.b", Result{Relation: Unrelated}},
		{"", "x", Result{Relation: Descend, Next: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.base+"->"+tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.base).Find(MustParse(tt.target)))
		})
	}
}

func TestWalkAndNearest(t *testing.T) {
	steps, ok := Walk(MustParse("a.b"), MustParse("a.b.c.d"))
	require.True(t, ok)
	assert.Equal(t, []string{"c", "d"}, steps)

	_, ok = Walk(MustParse("x"), MustParse("a.b"))
	assert.False(t, ok)

	imported := []Identifier{MustParse("a"), MustParse("a.b.c"), MustParse("z")}
	base, steps, ok := Nearest(imported, MustParse("a.b.c.d"))
	require.True(t, ok)
	assert.Equal(t, "a.b.c", base.String())
	assert.Equal(t, []string{"d"}, steps)

	_, _, ok = Nearest(imported, MustParse("q"))
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	pkg := MustParse("a.b")
	tests := []struct {
		rel  string
		want string
	}{
		{"..c", "a.c"},
		{"...c", "c"},
		{".", "a"},
		{"..", ""},
		{"x.y", "x.y"},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			got, err := MustParse(tt.rel).Resolve(pkg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	_, err := MustParse("....c").Resolve(pkg)
	assert.Error(t, err)
	_, err = MustParse("...").Resolve(pkg)
	assert.Error(t, err)
}

func TestParentAndLast(t *testing.T) {
	id := MustParse("a.b.c")
	assert.Equal(t, "c", id.Last())
	parent, ok := id.Parent()
	require.True(t, ok)
	assert.Equal(t, "a.b", parent.String())

	_, ok = MustParse("..").Parent()
	assert.False(t, ok)
	assert.Equal(t, []string{"pkg"}, MustParse("..pkg").Names())
}
