/*
Copyright © 2025 Honoka Toda, Shinya Ishitobi

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/goatx/pairwise"
	"github.com/goatx/pairwise/internal/config"
	"github.com/goatx/pairwise/internal/gotestgen"
	"github.com/goatx/pairwise/internal/render"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [FILE]",
	Short: "Generate a pairwise covering test suite",
	Long: `Build a test suite covering every pair of parameter values with the greedy heuristic or the optimal solver.
Provide a YAML or JSON parameter file as the argument, or omit it to use the built-in example model.
The suite is written to stdout or to a file via -o/--output in text, json, markdown, csv or gotest format.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithm := string(cfg.Algorithm)
		if err := overrideString(cmd, "algorithm", &algorithm); err != nil {
			return err
		}
		format := cfg.Format
		if err := overrideString(cmd, "format", &format); err != nil {
			return err
		}
		pkg := cfg.Package
		if err := overrideString(cmd, "package", &pkg); err != nil {
			return err
		}

		params, err := loadParameters(args)
		if err != nil {
			return err
		}
		opts, err := solverOptions(cmd)
		if err != nil {
			return err
		}
		opts = append(opts, pairwise.WithAlgorithm(pairwise.Algorithm(algorithm)))

		report, genErr := pairwise.Generate(cmd.Context(), params, opts...)
		if report == nil {
			return genErr
		}

		err = withOutput(cmd, func(w io.Writer) error {
			return write(w, report, format, pkg)
		})
		if err != nil {
			return err
		}
		return genErr
	},
}

func write(w io.Writer, report *pairwise.Report, format, pkg string) error {
	switch format {
	case config.FormatText:
		report.WriteText(w)
		return nil
	case config.FormatJSON:
		return report.WriteJSON(w)
	case config.FormatMarkdown:
		return render.Markdown(report, w)
	case config.FormatCSV:
		return render.CSV(report, w)
	case config.FormatGoTest:
		src, err := gotestgen.Generate(report, pkg)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, src)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("algorithm", string(pairwise.Greedy), "suite builder: greedy or optimal")
	generateCmd.Flags().Int("max-candidates", pairwise.DefaultMaxCandidates, "maximum number of candidate tests to enumerate (0 for no limit)")
	generateCmd.Flags().Duration("time-budget", pairwise.DefaultTimeBudget, "time limit of the optimal solver")
	generateCmd.Flags().String("format", config.FormatText, "output format: text, json, markdown, csv or gotest")
	generateCmd.Flags().String("package", "main", "package name of the generated Go test (gotest format)")
	generateCmd.Flags().StringP("output", "o", "", "write the generated suite to a file")
}
