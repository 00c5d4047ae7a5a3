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

	"github.com/goatx/pairwise"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare [FILE]",
	Short: "Compare greedy and optimal suite sizes",
	Long: `Run the greedy heuristic and the optimal solver concurrently on the same parameters and print both suite sizes.
Provide a YAML or JSON parameter file as the argument, or omit it to use the built-in example model.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := loadParameters(args)
		if err != nil {
			return err
		}

		algorithms := []pairwise.Algorithm{pairwise.Greedy, pairwise.Optimal}
		reports := make([]*pairwise.Report, len(algorithms))
		errs := make([]error, len(algorithms))

		g, ctx := errgroup.WithContext(cmd.Context())
		for i, alg := range algorithms {
			g.Go(func() error {
				opts, err := solverOptions(cmd)
				if err != nil {
					return err
				}
				opts = append(opts, pairwise.WithAlgorithm(alg))
				report, err := pairwise.Generate(ctx, params, opts...)
				if report == nil {
					return fmt.Errorf("%s: %w", alg, err)
				}
				reports[i], errs[i] = report, err
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "Total Unique Pairs: %d\n", reports[0].TotalPairs())
		for i, r := range reports {
			_, _ = fmt.Fprintf(out, "%s: %d test cases%s\n", algorithms[i], r.TotalTests(), note(r, errs[i]))
		}
		return nil
	},
}

func note(r *pairwise.Report, err error) string {
	switch {
	case len(r.Residual) > 0:
		return fmt.Sprintf(" (%d pairs uncovered)", len(r.Residual))
	case err != nil:
		return fmt.Sprintf(" (%v)", err)
	case r.Algorithm == pairwise.Optimal && r.Optimal:
		return " (optimality proven)"
	case r.Algorithm == pairwise.Optimal:
		return " (optimality not proven)"
	}
	return ""
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().Int("max-candidates", pairwise.DefaultMaxCandidates, "maximum number of candidate tests to enumerate (0 for no limit)")
	compareCmd.Flags().Duration("time-budget", pairwise.DefaultTimeBudget, "time limit of the optimal solver")
}
