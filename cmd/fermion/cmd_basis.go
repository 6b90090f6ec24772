package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fermion/fock"
)

// newActCmd applies an operator to one basis state.
//
// Examples:
//
//	fermion act --ket 01 "c^{+}_0 c_1"        # |10> (1+0i)
func newActCmd(cfg *cliConfig) *cobra.Command {
	var ketFlag string

	cmd := &cobra.Command{
		Use:   "act <operator>",
		Short: "Apply an operator to an occupation-number state",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ket, err := fock.Parse(ketFlag)
			if err != nil {
				return err
			}
			op, err := parseArgs(cfg, args)
			if err != nil {
				return err
			}
			if err := op.Validate(ket.Width()); err != nil {
				return err
			}

			result := op.ActRight(ket)
			bras := make([]fock.State, 0, len(result))
			for bra := range result {
				bras = append(bras, bra)
			}
			sort.Slice(bras, func(i, j int) bool { return bras[i].Less(bras[j]) })

			out := cmd.OutOrStdout()
			if len(bras) == 0 {
				fmt.Fprintln(out, "0")
				return nil
			}
			for _, bra := range bras {
				fmt.Fprintln(out, bra, result[bra])
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&ketFlag, "ket", "", "occupation string, mode 0 first (e.g. 0110)")
	_ = cmd.MarkFlagRequired("ket")

	return cmd
}

// newMatrixCmd prints the operator matrix in a fixed-particle sector.
func newMatrixCmd(cfg *cliConfig) *cobra.Command {
	var modes, particles int

	cmd := &cobra.Command{
		Use:   "matrix <operator>",
		Short: "Print the operator matrix over a fixed-particle basis",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			basis, err := fock.Basis(modes, particles)
			if err != nil {
				return err
			}
			op, err := parseArgs(cfg, args)
			if err != nil {
				return err
			}
			if err := op.Validate(modes); err != nil {
				return err
			}
			m, err := op.Matrix(basis)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			labels := make([]string, len(basis))
			for i, s := range basis {
				labels[i] = s.String()
			}
			fmt.Fprintln(out, "basis:", strings.Join(labels, " "))
			rows, cols := m.Dims()
			for r := 0; r < rows; r++ {
				cells := make([]string, cols)
				for c := 0; c < cols; c++ {
					cells[c] = fmt.Sprintf("%v", m.At(r, c))
				}
				fmt.Fprintln(out, strings.Join(cells, "\t"))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&modes, "modes", 2, "number of single-particle modes")
	cmd.Flags().IntVar(&particles, "particles", 1, "number of particles in the sector")

	return cmd
}
