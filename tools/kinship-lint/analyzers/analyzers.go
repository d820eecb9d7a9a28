// Package analyzers provides all custom static analyzers for kinship-core.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/nileroots/kinship-core/tools/kinship-lint/analyzers/loopquery"
	"github.com/nileroots/kinship-core/tools/kinship-lint/analyzers/nestedwalk"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		loopquery.Analyzer,
		nestedwalk.Analyzer,
	}
}
