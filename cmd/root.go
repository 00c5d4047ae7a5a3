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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goatx/pairwise"
	"github.com/goatx/pairwise/internal/config"
	"github.com/goatx/pairwise/internal/load"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pairwise",
	Short: "Generate pairwise covering test suites",
	Long: `Generate test suites in which every pair of values from two different parameters
appears together in at least one test case.
Parameters are read from a YAML or JSON file; the built-in example model is used when no file is given.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var (
	cfg    *config.Config
	logger *zap.Logger
)

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file with default settings")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
}

func setup(cmd *cobra.Command, args []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	c, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := overrideString(cmd, "log-level", &c.LogLevel); err != nil {
		return err
	}
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	cfg = c
	logger = newLogger(cmd.ErrOrStderr(), level).With(zap.String("run", uuid.NewString()))
	return nil
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}

// loadParameters reads the parameter file named by args, or returns the
// built-in example model.
func loadParameters(args []string) (*pairwise.Parameters, error) {
	if len(args) == 0 {
		return load.Default(), nil
	}
	return load.Load(args[0])
}

// solverOptions merges the config file with explicitly set flags.
func solverOptions(cmd *cobra.Command) ([]pairwise.Option, error) {
	maxCandidates := cfg.MaxCandidates
	if cmd.Flags().Changed("max-candidates") {
		v, err := cmd.Flags().GetInt("max-candidates")
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, fmt.Errorf("--max-candidates must be non-negative")
		}
		maxCandidates = v
	}
	budget := cfg.TimeBudget
	if cmd.Flags().Changed("time-budget") {
		v, err := cmd.Flags().GetDuration("time-budget")
		if err != nil {
			return nil, err
		}
		if v <= 0 {
			return nil, fmt.Errorf("--time-budget must be positive")
		}
		budget = v
	}
	return []pairwise.Option{
		pairwise.WithLogger(logger),
		pairwise.WithMaxCandidates(maxCandidates),
		pairwise.WithTimeBudget(budget),
	}, nil
}

func overrideString(cmd *cobra.Command, name string, dst *string) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// createOutput opens the -o/--output file.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// withOutput runs write against the -o/--output file or the command's stdout.
// A failure to close the file is reported when write succeeded.
func withOutput(cmd *cobra.Command, write func(io.Writer) error) (err error) {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if outputPath == "" {
		return write(cmd.OutOrStdout())
	}
	file, err := createOutput(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", outputPath, cerr)
		}
	}()
	return write(file)
}
