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
	"github.com/spf13/cobra"
)

// pairsCmd represents the pairs command
var pairsCmd = &cobra.Command{
	Use:   "pairs [FILE]",
	Short: "List the pairs a covering suite must contain",
	Long: `List every unordered pair of values from two different parameters in canonical order.
Provide a YAML or JSON parameter file as the argument, or omit it to use the built-in example model.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := loadParameters(args)
		if err != nil {
			return err
		}
		u, err := pairwise.GeneratePairUniverse(params)
		if err != nil {
			return err
		}

		return withOutput(cmd, func(w io.Writer) error {
			for _, p := range u.Pairs() {
				if _, err := fmt.Fprintln(w, p); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(w, "\nTotal Unique Pairs: %d\n", u.Len())
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(pairsCmd)

	pairsCmd.Flags().StringP("output", "o", "", "write the pair list to a file")
}
