// Package argcheck validates the ordering of call arguments and parameter
// lists before they are printed.
package argcheck

import (
	"fmt"

	"github.com/leapstack-labs/pyemit/pkg/ast"
)

// OrderError describes the first out-of-order argument or parameter.
type OrderError struct {
	Index  int
	Reason string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("argument %d: %s", e.Index, e.Reason)
}

// CheckCall validates call-site arguments: no positional argument after a
// keyword argument, and nothing after a ** argument.
func CheckCall(args []ast.Arg) error {
	var sawKeyword, sawDoubleStar bool
	for i, a := range args {
		if sawDoubleStar {
			return &OrderError{Index: i, Reason: "argument follows **kwargs"}
		}
		switch {
		case a.Kind == ast.ArgDoubleStar:
			sawDoubleStar = true
		case a.IsKeyword():
			sawKeyword = true
		case a.Kind == ast.ArgPlain && sawKeyword:
			return &OrderError{Index: i, Reason: "positional argument follows keyword argument"}
		}
	}
	return nil
}

// CheckParams validates a parameter list: only a ** parameter may follow a
// * parameter, and nothing may follow a ** parameter. A required parameter
// after a defaulted one is accepted.
func CheckParams(params []ast.Param) error {
	var sawStar, sawDoubleStar bool
	for i, p := range params {
		if sawDoubleStar {
			return &OrderError{Index: i, Reason: "parameter follows **kwargs"}
		}
		switch p.Kind {
		case ast.ArgDoubleStar:
			sawDoubleStar = true
		case ast.ArgStar:
			if sawStar {
				return &OrderError{Index: i, Reason: "duplicate * parameter"}
			}
			sawStar = true
		default:
			if sawStar {
				return &OrderError{Index: i, Reason: "parameter follows * parameter"}
			}
		}
	}
	return nil
}
