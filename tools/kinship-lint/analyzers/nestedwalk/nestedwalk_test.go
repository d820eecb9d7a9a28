package nestedwalk_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/nileroots/kinship-core/tools/kinship-lint/analyzers/nestedwalk"
)

func TestAnalyzer(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, nestedwalk.Analyzer, "a")
}
