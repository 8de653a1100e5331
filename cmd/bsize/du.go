package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dennisklein/size"
	"github.com/dennisklein/size/internal/render"
	"github.com/dennisklein/size/internal/scan"
)

// newDuCmd creates the du command. A nil fs means the OS filesystem.
func newDuCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "du [path...]",
		Short: "Show how much space files and directories use",
		Long: `Show the apparent size of each path, largest first.

A single directory argument lists its direct children with their share of the
total. Without arguments the current directory is used.`,
	}

	flags := addFormatFlags(cmd)

	var minSize size.Size

	cmd.Flags().Var(&minSize, "min-size", "Hide entries smaller than this size (e.g. 10MiB)")
	cmd.Flags().BoolP("summarize", "s", false, "Only print the total")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		summarize, err := cmd.Flags().GetBool("summarize")
		if err != nil {
			return fmt.Errorf("failed to get --summarize flag: %w", err)
		}

		paths, err := expandPaths(args)
		if err != nil {
			return err
		}

		msg := messenger(cmd)
		scanner := scan.NewScanner(fs)

		var entries []scan.Entry

		if len(paths) == 1 && scan.NewFSHelper(fs).IsDir(paths[0]) {
			_ = msg.Printf("scanning children of %s\n", paths[0]) //nolint:errcheck // best effort progress display
			entries, err = scanner.Children(paths[0])
		} else {
			_ = msg.Printf("scanning %d paths\n", len(paths)) //nolint:errcheck // best effort progress display
			entries, err = scanner.Scan(paths...)
		}

		if err != nil {
			return err
		}

		total := scan.Total(entries)
		r := render.New(cmd.OutOrStdout(), flags.formatter())

		if summarize {
			return r.SizeRow("total", total)
		}

		shown := scan.AtLeast(entries, minSize)
		if hidden := len(entries) - len(shown); hidden > 0 {
			_ = msg.Printf("%d entries below %s hidden\n", hidden, r.Size(minSize)) //nolint:errcheck // best effort progress display
		}

		for _, e := range shown {
			label := e.Path
			if e.Dir {
				label += "/"
			}

			if err := r.ShareRow(label, e.Size, total); err != nil {
				return err
			}
		}

		if len(entries) > 1 {
			return r.TotalRow("total", total)
		}

		return nil
	}

	return cmd
}

func expandPaths(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{"."}, nil
	}

	paths := make([]string, 0, len(args))

	for _, arg := range args {
		path, err := scan.ExpandHome(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %s: %w", arg, err)
		}

		paths = append(paths, path)
	}

	return paths, nil
}
