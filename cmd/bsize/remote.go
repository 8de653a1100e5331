package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dennisklein/size"
	"github.com/dennisklein/size/internal/remote"
	"github.com/dennisklein/size/internal/render"
)

func newRemoteCmd(cfg remote.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote <url>...",
		Short: "Show the size of files served over HTTP",
		Long:  `Ask the server for the size of each URL with a HEAD request. Failed requests are retried.`,
		Args:  cobra.MinimumNArgs(1),
	}

	flags := addFormatFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		msg := messenger(cmd)

		client, err := remote.NewClient(cfg)
		if err != nil {
			return err
		}

		r := render.New(cmd.OutOrStdout(), flags.formatter())
		sizes := make([]size.Size, 0, len(args))

		for _, url := range args {
			_ = msg.Printf("HEAD %s\n", url) //nolint:errcheck // best effort progress display

			length, err := client.ContentLength(ctx, url)
			if err != nil {
				return fmt.Errorf("failed to get size of %s: %w", url, err)
			}

			sizes = append(sizes, length)

			if err := r.SizeRow(url, length); err != nil {
				return err
			}
		}

		if len(sizes) > 1 {
			return r.TotalRow("total", size.Sum(sizes...))
		}

		return nil
	}

	return cmd
}
