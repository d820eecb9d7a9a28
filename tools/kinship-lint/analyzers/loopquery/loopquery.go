// Package loopquery detects graph provider reads inside loops.
package loopquery

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects graph provider reads inside loops that belong behind the
// per-query cache.
var Analyzer = &analysis.Analyzer{
	Name:     "loopquery",
	Doc:      "detects graph provider reads inside loops that should go through the per-query cache",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// providerMethods are method names that hit the backing store per call.
var providerMethods = map[string]bool{
	// GraphProvider interface
	"GetParents":  true,
	"GetChildren": true,
	"GetSpouses":  true,
	"FindPerson":  true,
	// FamilyDB lookups commonly repeated per person
	"FindPersonByID":   true,
	"FindPersonByName": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
		(*ast.ForStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt
		switch stmt := n.(type) {
		case *ast.RangeStmt:
			body = stmt.Body
		case *ast.ForStmt:
			body = stmt.Body
		}
		if body == nil {
			return
		}

		ast.Inspect(body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			methodName := sel.Sel.Name
			if providerMethods[methodName] {
				pass.Reportf(call.Pos(),
					"potential N+1: %s called inside loop - read through the query cache",
					methodName)
			}

			return true
		})
	})

	return nil, nil
}
