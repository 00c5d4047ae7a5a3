package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/goatx/pairwise"
	"github.com/goatx/pairwise/internal/test"
	"github.com/google/go-cmp/cmp"
)

func browserReport(t *testing.T) *pairwise.Report {
	t.Helper()
	params := pairwise.MustParameters(
		pairwise.Parameter{Name: "OS", Values: []string{"Windows", "Linux", "macOS"}},
		pairwise.Parameter{Name: "Browser", Values: []string{"Chrome", "Firefox", "Safari"}},
	)
	report, err := pairwise.Generate(context.Background(), params)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	return report
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		render func(*pairwise.Report, *bytes.Buffer) error
		golden string
	}{
		{
			name:   "markdown",
			render: func(r *pairwise.Report, b *bytes.Buffer) error { return Markdown(r, b) },
			golden: "browsers_markdown.golden",
		},
		{
			name:   "csv",
			render: func(r *pairwise.Report, b *bytes.Buffer) error { return CSV(r, b) },
			golden: "browsers_csv.golden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := tt.render(browserReport(t), &buf); err != nil {
				t.Fatalf("render returned error: %v", err)
			}
			want := test.ReadGolden(t, tt.golden)
			if diff := cmp.Diff(want, buf.String()); diff != "" {
				t.Fatalf("rendered output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func partialReport() *pairwise.Report {
	params := pairwise.MustParameters(
		pairwise.Parameter{Name: "A", Values: []string{"a|1", "a2"}},
		pairwise.Parameter{Name: "B", Values: []string{"b,1", "b2"}},
	)
	return &pairwise.Report{
		Algorithm:  pairwise.Greedy,
		Parameters: params,
		Suite:      pairwise.TestSuite{{"a|1", "b,1"}},
		Coverage:   pairwise.CoverageReport{NewPairs: []int{1}, TotalPairs: 4, TotalTests: 1},
		Residual: []pairwise.Pair{
			{A: pairwise.Selection{Param: "A", Value: "a2"}, B: pairwise.Selection{Param: "B", Value: "b2"}},
		},
	}
}

func TestMarkdown_EscapesAndResidual(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Markdown(partialReport(), &buf); err != nil {
		t.Fatalf("Markdown returned error: %v", err)
	}
	want := `| # | A | B | New Pairs |
|---|---|---|---|
| 1 | a\|1 | b,1 | 1 |

1 pairs uncovered:

- (A=a2, B=b2)
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("Markdown mismatch (-want +got):\n%s", diff)
	}
}

func TestCSV_Quoting(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := CSV(partialReport(), &buf); err != nil {
		t.Fatalf("CSV returned error: %v", err)
	}
	want := "#,A,B,New Pairs\n1,a|1,\"b,1\",1\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("CSV mismatch (-want +got):\n%s", diff)
	}
}
