package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dennisklein/size"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <size> <unit>",
		Short: "Express a size in a given unit",
		Long: `Express a size in a given unit.

Examples:
  bsize convert 1GiB MB        # 1073.741824 MB
  bsize convert 1.5TB gibibytes`,
		Args: cobra.ExactArgs(2),
	}

	cmd.Flags().Int("precision", -1, "Decimal digits (-1 prints the shortest exact representation)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		precision, err := cmd.Flags().GetInt("precision")
		if err != nil {
			return fmt.Errorf("failed to get --precision flag: %w", err)
		}

		s, err := size.Parse(args[0])
		if err != nil {
			return err
		}

		unit, err := size.ParseUnit(args[1])
		if err != nil {
			return err
		}

		value := strconv.FormatFloat(s.In(unit), 'f', precision, 64)

		return writeLine(cmd.OutOrStdout(), "%s %s", value, unit)
	}

	return cmd
}
