package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fermion/operator"
)

// parseArgs joins positional arguments into one operator expression, so
// both quoted and unquoted spellings work.
func parseArgs(cfg *cliConfig, args []string) (*operator.Operator, error) {
	return operator.ParseOperator(strings.Join(args, " "), cfg.options()...)
}

// newNormalOrderCmd prints the normal-ordered, reduced and pruned operator.
//
// Examples:
//
//	fermion normal-order "c_0 c^{+}_0"        # (-1+0i)*c^{+}_0 c_0 + (1+0i)
func newNormalOrderCmd(cfg *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "normal-order <operator>",
		Short: "Bring an operator to normal order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := parseArgs(cfg, args)
			if err != nil {
				return err
			}
			if err := op.MakeNormalOrder(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), op)

			return nil
		},
	}
}

// newCommutatorCmd prints [lhs, rhs] in normal order and whether it vanishes.
func newCommutatorCmd(cfg *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "commutator <lhs> <rhs>",
		Short: "Compute the commutator of two operators",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lhs, err := operator.ParseOperator(args[0], cfg.options()...)
			if err != nil {
				return fmt.Errorf("lhs: %w", err)
			}
			rhs, err := operator.ParseOperator(args[1], cfg.options()...)
			if err != nil {
				return fmt.Errorf("rhs: %w", err)
			}

			comm := lhs.Commutator(rhs)
			cfg.logger.Debug().Stringer("commutator", comm).Msg("raw")
			if err := comm.MakeNormalOrder(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, comm)
			fmt.Fprintln(out, "commutes:", comm.IsZero())

			return nil
		},
	}
}
