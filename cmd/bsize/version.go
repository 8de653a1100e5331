package main

import (
	"errors"
	"runtime"
	"runtime/debug"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Long:  ``,
		RunE:  version,
	}

	return cmd
}

func version(cmd *cobra.Command, args []string) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("could not read embedded build info ('go build -buildvcs=true')")
	}

	cmd.Printf("bsize %s (%s)\n", displayVersion(info.Main.Version), runtime.Version())

	return nil
}

// displayVersion normalizes module versions such as "v1.2.0" and keeps
// anything that is not a semantic version, like "(devel)", as is.
func displayVersion(v string) string {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return v
	}

	return "v" + parsed.String()
}
