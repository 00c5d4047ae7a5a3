package load

import (
	"strings"
	"testing"

	"github.com/goatx/pairwise"
	"github.com/goatx/pairwise/internal/test"
	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
	}{
		{name: "yaml", file: "browsers.yaml"},
		{name: "json", file: "browsers.json"},
	}

	want := []pairwise.Parameter{
		{Name: "OS", Values: []string{"Windows", "Linux", "macOS"}},
		{Name: "Browser", Values: []string{"Chrome", "Firefox", "Safari"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			params, err := Load(test.FixturePath(t, tt.file))
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if diff := cmp.Diff(want, params.All()); diff != "" {
				t.Fatalf("parameters mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(test.FixturePath(t, "missing.yaml")); err == nil {
		t.Fatal("Load returned no error for a missing file")
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []pairwise.Parameter
		wantErr string
	}{
		{
			name: "trims names and values",
			input: `
parameters:
  - name: "  Screen Size "
    values: [" Hand-held", "laptop ", "", "fullsize"]
  - name: Fonts
    values: [Minimal, Standard]
`,
			want: []pairwise.Parameter{
				{Name: "Screen Size", Values: []string{"Hand-held", "laptop", "fullsize"}},
				{Name: "Fonts", Values: []string{"Minimal", "Standard"}},
			},
		},
		{name: "empty document", input: "", wantErr: "no parameters defined"},
		{name: "malformed", input: "parameters: [", wantErr: "failed to parse"},
		{
			name:    "empty name",
			input:   "parameters:\n  - name: ' '\n    values: [a, b]\n",
			wantErr: "parameter name cannot be empty",
		},
		{
			name:    "invalid characters",
			input:   "parameters:\n  - name: 'OS/Arch'\n    values: [a, b]\n",
			wantErr: "can only contain letters",
		},
		{
			name:    "name too long",
			input:   "parameters:\n  - name: " + strings.Repeat("n", MaxNameLength+1) + "\n    values: [a, b]\n",
			wantErr: "parameter name too long",
		},
		{
			name:    "duplicate name",
			input:   "parameters:\n  - name: A\n    values: [a, b]\n  - name: A\n    values: [c, d]\n",
			wantErr: "already exists",
		},
		{
			name:    "single value",
			input:   "parameters:\n  - name: A\n    values: [a]\n",
			wantErr: "at least 2 values",
		},
		{
			name:    "no values",
			input:   "parameters:\n  - name: A\n",
			wantErr: "values cannot be empty",
		},
		{
			name:    "duplicate value",
			input:   "parameters:\n  - name: A\n    values: [a, a, b]\n",
			wantErr: "duplicate value",
		},
		{
			name:    "value used by another parameter",
			input:   "parameters:\n  - name: A\n    values: [a, b]\n  - name: B\n    values: [b, c]\n",
			wantErr: `value "b" already exists in parameter "A"`,
		},
		{
			name:    "value too long",
			input:   "parameters:\n  - name: A\n    values: [a, " + strings.Repeat("v", MaxValueLength+1) + "]\n",
			wantErr: "values exceeding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse([]byte(tt.input))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse error = %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.All()); diff != "" {
				t.Fatalf("parameters mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateValues_TooMany(t *testing.T) {
	t.Parallel()

	values := make([]string, MaxValues+1)
	for i := range values {
		values[i] = strings.Repeat("x", i+1)
	}
	if err := ValidateValues(values); err == nil || !strings.Contains(err.Error(), "maximum 50 values") {
		t.Fatalf("ValidateValues error = %v, want maximum values error", err)
	}
}

func TestParseValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{input: "a, b ,c", want: []string{"a", "b", "c"}},
		{input: " , a,, ", want: []string{"a"}},
		{input: "", want: nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ParseValues(tt.input)); diff != "" {
			t.Errorf("ParseValues(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	params := Default()
	want := []string{"Display Mode", "Language", "Fonts", "Color", "Screen Size"}
	if diff := cmp.Diff(want, params.Names()); diff != "" {
		t.Fatalf("Names() mismatch (-want +got):\n%s", diff)
	}
	if params.CandidateCount() != 432 {
		t.Fatalf("CandidateCount() = %d, want 432", params.CandidateCount())
	}
}
