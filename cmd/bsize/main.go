package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dennisklein/size/internal/remote"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bsize",
		Short:        "Format, parse and measure byte sizes",
		Long:         `bsize renders byte counts as human-readable sizes, parses them back, and reports the size of files, URLs and release assets.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Print progress messages to stderr")

	cfg := remote.Config{GitHubToken: os.Getenv("GITHUB_TOKEN")}

	cmd.AddCommand(newFormatCmd())
	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newDuCmd(nil))
	cmd.AddCommand(newRemoteCmd(cfg))
	cmd.AddCommand(newReleaseCmd(cfg))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
