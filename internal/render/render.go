package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goatx/pairwise"
)

// Markdown writes the suite of a report as a Markdown table.
// Each row holds the test number, one column per parameter and the number of
// pairs the test covers first.
//
// Parameters:
//   - report: Generated report to render
//   - writer: Destination io.Writer that receives the table
//
// Example:
//
//	report, _ := pairwise.Generate(ctx, params)
//	if err := render.Markdown(report, os.Stdout); err != nil {
//		log.Fatal(err)
//	}
func Markdown(report *pairwise.Report, writer io.Writer) error {
	header := columns(report)

	var sb strings.Builder
	writeRow(&sb, header)
	sb.WriteString("|")
	for range header {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")
	for i := range report.Suite {
		writeRow(&sb, row(report, i))
	}
	if len(report.Residual) > 0 {
		sb.WriteString(fmt.Sprintf("\n%d pairs uncovered:\n\n", len(report.Residual)))
		for _, p := range report.Residual {
			sb.WriteString(fmt.Sprintf("- %s\n", escape(p.String())))
		}
	}

	_, err := writer.Write([]byte(sb.String()))

	return err
}

// CSV writes the suite of a report as comma-separated values with a header
// row, using the same columns as Markdown.
func CSV(report *pairwise.Report, writer io.Writer) error {
	w := csv.NewWriter(writer)
	if err := w.Write(columns(report)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range report.Suite {
		if err := w.Write(row(report, i)); err != nil {
			return fmt.Errorf("failed to write test %d: %w", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}

func columns(report *pairwise.Report) []string {
	cols := []string{"#"}
	cols = append(cols, report.Parameters.Names()...)
	return append(cols, "New Pairs")
}

func row(report *pairwise.Report, i int) []string {
	cells := []string{strconv.Itoa(i + 1)}
	cells = append(cells, report.Suite[i]...)
	return append(cells, strconv.Itoa(report.Coverage.NewPairs[i]))
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, c := range cells {
		sb.WriteString(" ")
		sb.WriteString(escape(c))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
