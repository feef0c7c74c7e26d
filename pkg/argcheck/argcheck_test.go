package argcheck

import (
	"testing"

	"github.com/leapstack-labs/pyemit/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	positional = ast.Arg{Value: &ast.Name{ID: "a"}}
	keyword    = ast.Arg{Keyword: "k", Value: &ast.Name{ID: "b"}}
	starArg    = ast.Arg{Kind: ast.ArgStar, Value: &ast.Name{ID: "args"}}
	kwargsArg  = ast.Arg{Kind: ast.ArgDoubleStar, Value: &ast.Name{ID: "kw"}}
)

func TestCheckCall(t *testing.T) {
	tests := []struct {
		name    string
		args    []ast.Arg
		wantIdx int // -1 means valid
	}{
		{"empty", nil, -1},
		{"positional then keyword", []ast.Arg{positional, keyword}, -1},
		{"keyword then positional", []ast.Arg{keyword, positional}, 1},
		{"star after keyword", []ast.Arg{keyword, starArg}, -1},
		{"double star last", []ast.Arg{positional, starArg, keyword, kwargsArg}, -1},
		{"keyword after double star", []ast.Arg{kwargsArg, keyword}, 1},
		{"positional after double star", []ast.Arg{kwargsArg, positional}, 1},
		{"double star twice", []ast.Arg{kwargsArg, kwargsArg}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCall(tt.args)
			if tt.wantIdx < 0 {
				assert.NoError(t, err)
				return
			}
			var orderErr *OrderError
			require.ErrorAs(t, err, &orderErr)
			assert.Equal(t, tt.wantIdx, orderErr.Index)
		})
	}
}

func TestCheckParams(t *testing.T) {
	normal := ast.Param{Name: "a"}
	defaulted := ast.Param{Name: "b", Default: &ast.Constant{Kind: ast.ConstInt, Value: "1"}}
	star := ast.Param{Kind: ast.ArgStar, Name: "args"}
	bareStar := ast.Param{Kind: ast.ArgStar}
	doubleStar := ast.Param{Kind: ast.ArgDoubleStar, Name: "kw"}

	tests := []struct {
		name    string
		params  []ast.Param
		wantIdx int
	}{
		{"normal star doublestar", []ast.Param{normal, star, doubleStar}, -1},
		{"required after default is allowed", []ast.Param{defaulted, normal}, -1},
		{"bare star then doublestar", []ast.Param{normal, bareStar, doubleStar}, -1},
		{"doublestar then normal", []ast.Param{doubleStar, normal}, 1},
		{"star star", []ast.Param{star, star}, 1},
		{"normal after star", []ast.Param{star, normal}, 1},
		{"reports first violation", []ast.Param{doubleStar, normal, star}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckParams(tt.params)
			if tt.wantIdx < 0 {
				assert.NoError(t, err)
				return
			}
			var orderErr *OrderError
			require.ErrorAs(t, err, &orderErr)
			assert.Equal(t, tt.wantIdx, orderErr.Index)
		})
	}
}

func TestOrderErrorMessage(t *testing.T) {
	err := CheckCall([]ast.Arg{keyword, positional})
	assert.EqualError(t, err, "argument 1: positional argument follows keyword argument")
}
