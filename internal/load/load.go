package load

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goatx/pairwise"
	"gopkg.in/yaml.v3"
)

// Limits of the parameter definition rules.
const (
	MaxNameLength  = 50
	MaxValueLength = 100
	MaxValues      = 50
	MinValues      = 2
)

// File is the on-disk parameter definition. JSON documents are accepted too,
// since they are valid YAML.
type File struct {
	Parameters []Definition `yaml:"parameters"`
}

// Definition is one parameter as written by the user.
type Definition struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// Load reads a parameter definition file and returns a validated model.
func Load(path string) (*pairwise.Parameters, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", abs, err)
	}
	params, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", abs, err)
	}
	return params, nil
}

// Parse decodes and validates a parameter definition document.
func Parse(data []byte) (*pairwise.Parameters, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	if len(f.Parameters) == 0 {
		return nil, fmt.Errorf("no parameters defined")
	}
	return Build(f.Parameters)
}

// Build validates definitions and builds the parameter model. Names and
// values are trimmed before validation.
func Build(defs []Definition) (*pairwise.Parameters, error) {
	ps := make([]pairwise.Parameter, 0, len(defs))
	owner := make(map[string]string)
	seen := make(map[string]bool)
	for i, d := range defs {
		name := strings.TrimSpace(d.Name)
		if err := ValidateName(name); err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		if seen[name] {
			return nil, fmt.Errorf("parameter name %q already exists", name)
		}
		seen[name] = true

		values := make([]string, 0, len(d.Values))
		for _, v := range d.Values {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		if err := ValidateValues(values); err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		for _, v := range values {
			if other, ok := owner[v]; ok {
				return nil, fmt.Errorf("parameter %q: value %q already exists in parameter %q", name, v, other)
			}
			owner[v] = name
		}
		ps = append(ps, pairwise.Parameter{Name: name, Values: values})
	}
	return pairwise.NewParameters(ps...)
}

// ValidateName checks a trimmed parameter name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("parameter name cannot be empty")
	}
	for _, r := range name {
		if !isNameRune(r) {
			return fmt.Errorf("parameter name %q can only contain letters, numbers, spaces, underscores, and hyphens", name)
		}
	}
	if len([]rune(name)) > MaxNameLength {
		return fmt.Errorf("parameter name too long (max %d characters)", MaxNameLength)
	}
	return nil
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '_', r == '-':
		return true
	}
	return false
}

// ValidateValues checks the trimmed, non-empty values of one parameter.
func ValidateValues(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("values cannot be empty")
	}
	if len(values) > MaxValues {
		return fmt.Errorf("maximum %d values allowed per parameter", MaxValues)
	}
	var long []string
	for _, v := range values {
		if len([]rune(v)) > MaxValueLength {
			long = append(long, v)
		}
	}
	if len(long) > 0 {
		return fmt.Errorf("values exceeding %d characters: %s", MaxValueLength, strings.Join(long, ", "))
	}
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			return fmt.Errorf("duplicate value %q within a parameter", v)
		}
		seen[v] = true
	}
	if len(values) < MinValues {
		return fmt.Errorf("at least %d values are required for each parameter", MinValues)
	}
	return nil
}

// ParseValues splits a comma-separated value list, dropping empty entries.
func ParseValues(s string) []string {
	var values []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// Default returns the built-in example model.
func Default() *pairwise.Parameters {
	return pairwise.MustParameters(
		pairwise.Parameter{Name: "Display Mode", Values: []string{"Full Graph", "Text Only", "Limited-Bandwidth"}},
		pairwise.Parameter{Name: "Language", Values: []string{"English", "French", "Spanish", "Turkish"}},
		pairwise.Parameter{Name: "Fonts", Values: []string{"Minimal", "Standard", "Document-loaded"}},
		pairwise.Parameter{Name: "Color", Values: []string{"Monochrome", "Colormap", "16-bit", "True Color"}},
		pairwise.Parameter{Name: "Screen Size", Values: []string{"Hand-held", "laptop", "fullsize"}},
	)
}
