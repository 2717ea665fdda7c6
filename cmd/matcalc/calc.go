package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/internal/workbook"
	"github.com/katalvlaran/lvmat/matrix"
)

func (a *app) calcCmd() *cobra.Command {
	var step workbook.Step

	cmd := &cobra.Command{
		Use:   "calc <op> [grid] [grid]",
		Short: "Apply one operation to inline grids",
		Long:  "Apply one operation to inline grids such as \"1 2; 3 4\". Ops: " + opsHelp() + ".",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			step.Name, step.Op = args[0], args[0]

			operands := make([]*matrix.Dense[float64], 0, len(args)-1)
			for _, s := range args[1:] {
				grid, err := workbook.ParseGrid(s)
				if err != nil {
					return err
				}
				m, err := matrix.New(grid)
				if err != nil {
					return err
				}
				operands = append(operands, m)
			}

			res, err := workbook.Apply(step, operands...)
			if err != nil {
				return fmt.Errorf("%s: %w", step.Op, err)
			}
			a.log.Debug().Str("op", step.Op).Int("operands", len(operands)).Msg("calc done")

			if res.IsScalar() {
				_, err = fmt.Fprintln(a.out, strconv.FormatFloat(res.Scalar, 'f', a.cfg.Precision, 64))
				return err
			}
			_, err = fmt.Fprint(a.out, matrix.Format(res.Matrix, matrix.WithPrecision(a.cfg.Precision)))
			return err
		},
	}

	cmd.Flags().Float64Var(&step.Scalar, "scalar", 0, "scalar for scale, or n for identity")
	cmd.Flags().IntVar(&step.Rows, "rows", 0, "rows for zeros")
	cmd.Flags().IntVar(&step.Cols, "cols", 0, "cols for zeros")

	return cmd
}
