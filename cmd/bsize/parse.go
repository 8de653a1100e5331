package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dennisklein/size"
)

// parsed is one record of machine-readable parse output.
type parsed struct {
	Input string    `json:"input" yaml:"input"`
	Bytes size.Size `json:"bytes" yaml:"bytes"`
	Text  string    `json:"text" yaml:"text"`
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <size>...",
		Short: "Parse human-readable sizes into byte counts",
		Long: `Parse human-readable sizes such as "12.34 MiB" or "1.5gb" into exact byte counts.

Units are case-insensitive and may be abbreviated or spelled out, with or
without a trailing "s". A number without a unit is a byte count.`,
		Args: cobra.MinimumNArgs(1),
	}

	flags := addFormatFlags(cmd)
	cmd.Flags().StringP("output", "o", "text", "Output format: text, json or yaml")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("failed to get --output flag: %w", err)
		}

		formatter := flags.formatter()

		records := make([]parsed, 0, len(args))

		for _, arg := range args {
			s, err := size.Parse(arg)
			if err != nil {
				return err
			}

			records = append(records, parsed{Input: arg, Bytes: s, Text: formatter.Format(s.Bytes())})
		}

		return writeParsed(cmd.OutOrStdout(), output, records)
	}

	return cmd
}

func writeParsed(out io.Writer, output string, records []parsed) error {
	switch output {
	case "text":
		for _, r := range records {
			if err := writeLine(out, "%s bytes\t%s", humanize.Comma(r.Bytes.Bytes()), r.Text); err != nil {
				return err
			}
		}

		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}

		return nil
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)

		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}

		return enc.Close()
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}
