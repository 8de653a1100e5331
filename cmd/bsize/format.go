package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <bytes>...",
		Short: "Render byte counts as human-readable sizes",
		Long: `Render exact byte counts as human-readable sizes.

Examples:
  bsize format 1340249                 # 1.28 MiB
  bsize format --base base10 1340249   # 1.34 MB
  bsize format --style full 1          # 1 Byte`,
		Args: cobra.MinimumNArgs(1),
	}

	flags := addFormatFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		formatter := flags.formatter()
		out := cmd.OutOrStdout()

		for _, arg := range args {
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid byte count %q: %w", arg, err)
			}

			if err := writeLine(out, "%s", formatter.Format(n)); err != nil {
				return err
			}
		}

		return nil
	}

	return cmd
}
