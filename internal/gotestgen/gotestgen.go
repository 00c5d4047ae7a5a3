package gotestgen

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/goatx/pairwise"
	"github.com/goatx/pairwise/internal/strcase"
	"golang.org/x/tools/imports"
)

// DefaultFuncName is the name of the generated test function.
const DefaultFuncName = "TestPairwise"

// Generate renders a report's suite as a table-driven Go test.
// Every parameter becomes a string field of the table and every test case a
// row; the generated subtests skip until the caller fills in the body.
//
// Parameters:
//   - report: Generated report whose suite becomes the test table
//   - pkg: Package clause of the generated file
//
// Returns the formatted source. If formatting fails, the unformatted source is
// returned with the error for debugging.
//
// Example:
//
//	src, err := gotestgen.Generate(report, "checkout_test")
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("checkout_pairwise_test.go", []byte(src), 0o644)
func Generate(report *pairwise.Report, pkg string) (string, error) {
	if !token.IsIdentifier(pkg) {
		return "", fmt.Errorf("invalid package name %q", pkg)
	}
	fields := FieldNames(report.Parameters.Names())

	var buf strings.Builder
	buf.WriteString("// Code generated by pairwise. DO NOT EDIT.\n\n")
	buf.WriteString(fmt.Sprintf("package %s\n\n", pkg))
	buf.WriteString("import \"testing\"\n\n")
	buf.WriteString(fmt.Sprintf("func %s(t *testing.T) {\n", DefaultFuncName))
	buf.WriteString("\ttests := []struct {\n")
	buf.WriteString("\t\tname string\n")
	for _, f := range fields {
		buf.WriteString(fmt.Sprintf("\t\t%s string\n", f))
	}
	buf.WriteString("\t}{\n")
	for i, a := range report.Suite {
		buf.WriteString("\t\t")
		buf.WriteString(formatCase(fmt.Sprintf("case_%d", i+1), fields, a))
		buf.WriteString(",\n")
	}
	buf.WriteString("\t}\n\n")
	buf.WriteString("\tfor _, tt := range tests {\n")
	buf.WriteString("\t\tt.Run(tt.name, func(t *testing.T) {\n")
	buf.WriteString("\t\t\tt.Parallel()\n")
	buf.WriteString("\t\t\tt.Skipf(\"exercise the system under test with %+v\", tt)\n")
	buf.WriteString("\t\t})\n")
	buf.WriteString("\t}\n")
	buf.WriteString("}\n")

	formatted, err := imports.Process("pairwise_test.go", []byte(buf.String()), nil)
	if err != nil {
		return buf.String(), fmt.Errorf("failed to format generated test: %w", err)
	}

	return string(formatted), nil
}

func formatCase(name string, fields []string, values pairwise.Assignment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "{name: %q", name)
	for i, f := range fields {
		fmt.Fprintf(&b, ", %s: %q", f, values[i])
	}
	b.WriteString("}")
	return b.String()
}

// FieldNames maps parameter names to distinct struct field identifiers.
// Keywords and the reserved name field get a Param suffix, names without any
// letter or digit fall back to their position, and repeats get a numeric
// suffix.
func FieldNames(names []string) []string {
	used := map[string]bool{"name": true}
	fields := make([]string, len(names))
	for i, n := range names {
		id := strcase.ToCamelCase(n)
		switch {
		case id == "":
			id = fmt.Sprintf("param%d", i+1)
		case token.IsKeyword(id), id == "name":
			id += "Param"
		}
		base := id
		for k := 2; used[id]; k++ {
			id = fmt.Sprintf("%s%d", base, k)
		}
		used[id] = true
		fields[i] = id
	}
	return fields
}
