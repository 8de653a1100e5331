package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dennisklein/size"
	"github.com/dennisklein/size/internal/render"
)

// formatFlags holds the rendering options shared by all commands that print
// sizes.
type formatFlags struct {
	base      size.Base
	style     size.Style
	precision int
}

func addFormatFlags(cmd *cobra.Command) *formatFlags {
	f := &formatFlags{base: size.Base2, style: size.Default, precision: -1}

	cmd.Flags().Var(&f.base, "base", "Unit base: base2 (KiB, MiB, ...) or base10 (KB, MB, ...)")
	cmd.Flags().Var(&f.style, "style", "Unit spelling: default, abbreviated, abbreviated-lowercase, full, full-lowercase")
	cmd.Flags().IntVar(&f.precision, "precision", -1, "Decimal digits for units above bytes (-1 picks them per magnitude)")

	return f
}

func (f *formatFlags) formatter() size.Formatter {
	return size.NewFormatter().
		WithBase(f.base).
		WithStyle(f.style).
		WithScale(f.precision)
}

// messenger returns a Messenger writing to stderr when --verbose is set.
func messenger(cmd *cobra.Command) *render.Messenger {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil || !verbose {
		return render.NewMessenger(nil)
	}

	return render.NewMessenger(cmd.ErrOrStderr())
}

func writeLine(out io.Writer, format string, args ...interface{}) error {
	if _, err := fmt.Fprintf(out, format+"\n", args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
