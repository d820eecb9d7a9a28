// kinship-lint is a custom static analyzer for kinship-core performance patterns.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/nileroots/kinship-core/tools/kinship-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
