// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numkit/internal/config"
	"github.com/katalvlaran/numkit/matrix"
)

// mat64 is the element/working type pair used by every command.
type mat64 = matrix.Matrix[float64, float64]

// newRootCmd wires all subcommands. cfg supplies flag defaults; flags win.
func newRootCmd(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "numkit",
		Short: "numkit - dense matrix toolkit",
		Long: `numkit transposes and multiplies dense matrices and estimates their
dominant and second eigenvalues by power iteration and Wielandt deflation.

Matrices are written as {{1,2},{3,4}} or [1,2;3,4]; and are read from the
arguments or, when none are given, from stdin (one matrix per line).`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().Int("max-iters", cfg.MaxIterations, "Power iteration cap (NUMKIT_MAX_ITERS)")
	rootCmd.PersistentFlags().Float64("tolerance", cfg.Tolerance, "Convergence threshold on successive estimates (NUMKIT_TOLERANCE)")
	rootCmd.PersistentFlags().Float64("epsilon", cfg.Epsilon, "Allowed stochastic row-sum deviation (NUMKIT_EPSILON)")
	rootCmd.PersistentFlags().String("format", cfg.Format, "Matrix output format: string or dump (NUMKIT_FORMAT)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "numkit v%s (%s) built %s\n", version, commit, buildTime)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "transpose [MATRIX]",
		Short: "Print the transpose of a matrix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := readMatrices(cmd, args, 1)
			if err != nil {
				return err
			}
			if err = ms[0].Transpose(); err != nil {
				return err
			}
			return printMatrix(cmd, ms[0])
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "mul [A B]",
		Short: "Print the product A·B",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := readMatrices(cmd, args, 2)
			if err != nil {
				return err
			}
			p, err := matrix.Mul(ms[0], ms[1])
			if err != nil {
				return err
			}
			return printMatrix(cmd, p)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "eigen [MATRIX]",
		Short: "Estimate the dominant eigenvalue by power iteration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := matrixOptions(cmd, logger)
			if err != nil {
				return err
			}
			ms, err := readMatrices(cmd, args, 1)
			if err != nil {
				return err
			}
			est, err := ms[0].PowerIterate(opts...)
			if err != nil {
				return err
			}
			printEstimate(cmd.OutOrStdout(), est)
			return nil
		},
	})

	secondCmd := &cobra.Command{
		Use:   "second [MATRIX]",
		Short: "Estimate the second-largest eigenvalue by Wielandt deflation",
		Long: `Estimate |λ2| of a row-stochastic matrix (rows summing to 1), deflating
around the all-ones Perron vector. With --general, any square matrix is
accepted and the deflation pivots on the computed dominant eigenvector.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := matrixOptions(cmd, logger)
			if err != nil {
				return err
			}
			ms, err := readMatrices(cmd, args, 1)
			if err != nil {
				return err
			}
			if general, _ := cmd.Flags().GetBool("general"); general {
				est, err := ms[0].SecondLargestEigenvalue(opts...)
				if err != nil {
					return err
				}
				printEstimate(cmd.OutOrStdout(), est)
				return nil
			}
			if skip, _ := cmd.Flags().GetBool("no-validate"); skip {
				opts = append(opts, matrix.WithNoValidateStochastic())
			}
			l2, err := ms[0].SecondLargestEigenvalueOfStochasticSquareMatrix(opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.6g\n", l2)
			return nil
		},
	}
	secondCmd.Flags().Bool("general", false, "Deflate around the computed dominant eigenvector (any square matrix)")
	secondCmd.Flags().Bool("no-validate", false, "Skip the row-sum check for stochastic input")
	rootCmd.AddCommand(secondCmd)

	return rootCmd
}

// matrixOptions resolves the numeric flags into validated matrix options.
func matrixOptions(cmd *cobra.Command, logger *zap.Logger) ([]matrix.Option, error) {
	flags := cmd.Flags()
	var (
		c   config.Config
		err error
	)
	if c.MaxIterations, err = flags.GetInt("max-iters"); err != nil {
		return nil, err
	}
	if c.Tolerance, err = flags.GetFloat64("tolerance"); err != nil {
		return nil, err
	}
	if c.Epsilon, err = flags.GetFloat64("epsilon"); err != nil {
		return nil, err
	}
	if c.Format, err = flags.GetString("format"); err != nil {
		return nil, err
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	return append(c.MatrixOptions(), matrix.WithLogger(logger.With(zap.String("command", cmd.Name())))), nil
}

// readMatrices parses exactly n matrix literals from args, or from stdin (one
// per non-blank line) when args is empty.
func readMatrices(cmd *cobra.Command, args []string, n int) ([]*mat64, error) {
	inputs := args
	if len(inputs) == 0 {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		for _, line := range strings.Split(string(raw), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				inputs = append(inputs, line)
			}
		}
	}
	if len(inputs) != n {
		return nil, fmt.Errorf("expected %d matrix literal(s), got %d", n, len(inputs))
	}

	out := make([]*mat64, n)
	for k, s := range inputs {
		m, err := matrix.Parse[float64, float64](s)
		if err != nil {
			return nil, fmt.Errorf("matrix %d: %w", k+1, err)
		}
		out[k] = m
	}
	return out, nil
}

// printMatrix writes m in the --format spelling.
func printMatrix(cmd *cobra.Command, m *mat64) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch format {
	case config.FormatString:
		fmt.Fprintln(cmd.OutOrStdout(), m.String())
	case config.FormatDump:
		fmt.Fprintln(cmd.OutOrStdout(), m.Dump())
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

func printEstimate(w io.Writer, est matrix.Estimate[float64]) {
	fmt.Fprintf(w, "value=%.6g rayleigh=%.6g iterations=%d converged=%t\n",
		est.Value, est.Rayleigh, est.Iterations, est.Converged)
}
