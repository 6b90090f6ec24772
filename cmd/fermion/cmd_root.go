package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fermion/operator"
)

// errPrecision rejects a --precision the operator options would refuse.
var errPrecision = errors.New("fermion: precision must be finite and non-negative")

// cliConfig carries the global flags shared by every subcommand.
type cliConfig struct {
	precision float64
	verbose   bool
	logger    zerolog.Logger
}

// options resolves the global flags into operator options.
func (c *cliConfig) options() []operator.Option {
	return []operator.Option{
		operator.WithPrecision(c.precision),
		operator.WithLogger(c.logger),
	}
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree so tests can execute commands in isolation.
func newRootCmd() *cobra.Command {
	cfg := &cliConfig{}

	root := &cobra.Command{
		Use:           "fermion",
		Short:         "Normal-order, commute and apply fermionic operators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := zerolog.WarnLevel
			if cfg.verbose {
				level = zerolog.DebugLevel
			}
			cfg.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
				Level(level).
				With().Timestamp().Logger()
			if math.IsNaN(cfg.precision) || math.IsInf(cfg.precision, 0) || cfg.precision < 0 {
				return fmt.Errorf("--precision %v: %w", cfg.precision, errPrecision)
			}

			return nil
		},
	}
	root.PersistentFlags().Float64Var(&cfg.precision, "precision", operator.DefaultPrecision, "drop terms whose coefficient magnitude is below this value")
	root.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false, "log intermediate forms at debug level")

	root.AddCommand(
		newNormalOrderCmd(cfg),
		newCommutatorCmd(cfg),
		newActCmd(cfg),
		newMatrixCmd(cfg),
	)

	return root
}
