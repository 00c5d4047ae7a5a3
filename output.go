package pairwise

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

type reportSummary struct {
	Algorithm  Algorithm `json:"algorithm"`
	TotalPairs int       `json:"total_pairs"`
	TotalTests int       `json:"total_tests"`
	Covered    int       `json:"covered_pairs"`
	Optimal    bool      `json:"optimal"`
	Truncated  bool      `json:"truncated"`
}

type reportTest struct {
	Index    int      `json:"index"`
	Values   []string `json:"values"`
	NewPairs int      `json:"new_pairs"`
}

func (r *Report) summarize() reportSummary {
	return reportSummary{
		Algorithm:  r.Algorithm,
		TotalPairs: r.TotalPairs(),
		TotalTests: r.TotalTests(),
		Covered:    r.Coverage.Covered(),
		Optimal:    r.Optimal,
		Truncated:  r.Truncated,
	}
}

// WriteText writes one line per test followed by a summary.
//
// Example output:
//
//	Test case 1: OS=Windows, Browser=Chrome (1 new unique pairs)
//
//	Pairwise Generation Summary:
//	Algorithm: greedy
//	Total Unique Pairs: 9
//	Total Test Cases: 9
func (r *Report) WriteText(w io.Writer) {
	names := r.Parameters.Names()
	for i, a := range r.Suite {
		_, _ = fmt.Fprintf(w, "Test case %d: %s (%d new unique pairs)\n",
			i+1, formatAssignment(names, a), r.Coverage.NewPairs[i])
	}
	if len(r.Suite) == 0 {
		_, _ = fmt.Fprintln(w, "No test cases generated.")
	}

	summary := r.summarize()
	_, _ = fmt.Fprintln(w, "\nPairwise Generation Summary:")
	_, _ = fmt.Fprintf(w, "Algorithm: %s\n", summary.Algorithm)
	_, _ = fmt.Fprintf(w, "Total Unique Pairs: %d\n", summary.TotalPairs)
	_, _ = fmt.Fprintf(w, "Total Test Cases: %d\n", summary.TotalTests)
	if r.Algorithm == Optimal {
		if summary.Optimal {
			_, _ = fmt.Fprintln(w, "Optimality: proven")
		} else {
			_, _ = fmt.Fprintln(w, "Optimality: not proven")
		}
	}
	if summary.Truncated {
		_, _ = fmt.Fprintln(w, "Candidate Space: truncated")
	}
	if len(r.Residual) > 0 {
		_, _ = fmt.Fprintf(w, "Uncovered Pairs: %d\n", len(r.Residual))
		for _, p := range r.Residual {
			_, _ = fmt.Fprintf(w, "  %s\n", p)
		}
	}
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	tests := make([]reportTest, len(r.Suite))
	for i, a := range r.Suite {
		tests[i] = reportTest{
			Index:    i + 1,
			Values:   []string(a),
			NewPairs: r.Coverage.NewPairs[i],
		}
	}
	result := map[string]any{
		"parameters": r.Parameters.All(),
		"tests":      tests,
		"summary":    r.summarize(),
	}
	if len(r.Residual) > 0 {
		result["residual"] = r.Residual
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func formatAssignment(names []string, a Assignment) string {
	parts := make([]string, len(a))
	for i, v := range a {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		parts[i] = name + "=" + v
	}
	return strings.Join(parts, ", ")
}
