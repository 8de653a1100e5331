package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dennisklein/size/internal/testutil"
)

func TestNewFormatCmd(t *testing.T) {
	t.Run("creates format command", func(t *testing.T) {
		cmd := newFormatCmd()

		require.NotNil(t, cmd)
		assert.Equal(t, "format <bytes>...", cmd.Use)
		assert.NotEmpty(t, cmd.Short)
		assert.NotNil(t, cmd.RunE)
	})

	t.Run("has format flags", func(t *testing.T) {
		cmd := newFormatCmd()

		base := cmd.Flags().Lookup("base")
		require.NotNil(t, base)
		assert.Equal(t, "base2", base.DefValue)
		assert.Equal(t, "base", base.Value.Type())

		style := cmd.Flags().Lookup("style")
		require.NotNil(t, style)
		assert.Equal(t, "default", style.DefValue)

		precision := cmd.Flags().Lookup("precision")
		require.NotNil(t, precision)
		assert.Equal(t, "-1", precision.DefValue)
	})
}

func TestRunFormat(t *testing.T) {
	//nolint:govet // fieldalignment: test readability over optimization
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default", args: []string{"1340249"}, want: "1.28 MiB\n"},
		{name: "base10", args: []string{"--base", "base10", "1340249"}, want: "1.34 MB\n"},
		{name: "bytes", args: []string{"999"}, want: "999 bytes\n"},
		{name: "full singular", args: []string{"--style", "full", "1"}, want: "1 Byte\n"},
		{name: "precision", args: []string{"--precision", "0", "1340249"}, want: "1 MiB\n"},
		{name: "negative", args: []string{"--", "-1024"}, want: "-1.00 KiB\n"},
		{name: "several", args: []string{"--base", "si", "1000", "1500000"}, want: "1.00 KB\n1.50 MB\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, newFormatCmd(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, output)
		})
	}

	t.Run("rejects non-integer", func(t *testing.T) {
		_, err := execute(t, newFormatCmd(), "1.5")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid byte count "1.5"`)
	})

	t.Run("rejects unknown base", func(t *testing.T) {
		_, err := execute(t, newFormatCmd(), "--base", "base8", "1")
		assert.Error(t, err)
	})

	t.Run("requires an argument", func(t *testing.T) {
		_, err := execute(t, newFormatCmd())
		assert.Error(t, err)
	})

	t.Run("reports write errors", func(t *testing.T) {
		cmd := newFormatCmd()
		cmd.SetOut(testutil.NewErrorWriter(errors.New("closed")))
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"1"})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write output")
	})
}
