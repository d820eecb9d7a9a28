package loopquery_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/nileroots/kinship-core/tools/kinship-lint/analyzers/loopquery"
)

func TestAnalyzer(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, loopquery.Analyzer, "a")
}
