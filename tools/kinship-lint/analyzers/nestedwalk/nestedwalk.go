// Package nestedwalk detects quadratic pairwise scans over the same slice.
//
// The graph services compare id lists constantly (shared parents for
// siblings, union membership, path overlap). Done naively that is a nested
// range over the same slice; the codebase's convention is to index one pass
// into a set keyed by id and probe it.
package nestedwalk

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects nested loops ranging over the same slice.
var Analyzer = &analysis.Analyzer{
	Name:     "nestedwalk",
	Doc:      "detects quadratic nested loops over the same slice, usually a pairwise id scan",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		outer := n.(*ast.RangeStmt)

		outerIdent := getIdent(outer.X)
		if outerIdent == "" || !isSlice(pass, outer.X) {
			return
		}

		ast.Inspect(outer.Body, func(n ast.Node) bool {
			inner, ok := n.(*ast.RangeStmt)
			if !ok {
				return true
			}

			if getIdent(inner.X) == outerIdent {
				pass.Reportf(inner.Pos(),
					"quadratic scan: nested loop over %q - build a set keyed by id in one pass and probe it",
					outerIdent)
			}

			return true
		})
	})

	return nil, nil
}

// isSlice reports whether the ranged expression is a slice or array. Maps
// already give membership lookups, so ranging one twice is left alone.
func isSlice(pass *analysis.Pass, expr ast.Expr) bool {
	tv, ok := pass.TypesInfo.Types[expr]
	if !ok || tv.Type == nil {
		return false
	}
	switch tv.Type.Underlying().(type) {
	case *types.Slice, *types.Array:
		return true
	}
	return false
}

// getIdent extracts the identifier name from an expression.
func getIdent(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		if ident, ok := e.X.(*ast.Ident); ok {
			return ident.Name + "." + e.Sel.Name
		}
	}
	return ""
}
