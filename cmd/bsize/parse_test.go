package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dennisklein/size"
)

func TestNewParseCmd(t *testing.T) {
	cmd := newParseCmd()

	require.NotNil(t, cmd)
	assert.Equal(t, "parse <size>...", cmd.Use)
	assert.NotEmpty(t, cmd.Long)

	flag := cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "text", flag.DefValue)
	assert.Equal(t, "o", flag.Shorthand)
}

func TestRunParse(t *testing.T) {
	t.Run("prints bytes with separators", func(t *testing.T) {
		output, err := execute(t, newParseCmd(), "12.34 MiB", "1kb")
		require.NoError(t, err)
		assert.Equal(t, "12,939,427 bytes\t12.3 MiB\n1,000 bytes\t1000 bytes\n", output)
	})

	t.Run("renders with format flags", func(t *testing.T) {
		output, err := execute(t, newParseCmd(), "--base", "base10", "--style", "full", "1kb")
		require.NoError(t, err)
		assert.Equal(t, "1,000 bytes\t1.00 Kilobytes\n", output)
	})

	t.Run("writes json", func(t *testing.T) {
		output, err := execute(t, newParseCmd(), "-o", "json", "1KiB")
		require.NoError(t, err)
		assert.Contains(t, output, `"input": "1KiB"`)
		assert.Contains(t, output, `"bytes": 1024`)
		assert.Contains(t, output, `"text": "1.00 KiB"`)
	})

	t.Run("writes yaml", func(t *testing.T) {
		output, err := execute(t, newParseCmd(), "--output", "yaml", "2 gibibytes")
		require.NoError(t, err)
		assert.Contains(t, output, "- input: 2 gibibytes")
		assert.Contains(t, output, "bytes: 2147483648")
		assert.Contains(t, output, "text: 2.00 GiB")
	})

	t.Run("rejects unknown output", func(t *testing.T) {
		_, err := execute(t, newParseCmd(), "-o", "xml", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format: xml")
	})

	t.Run("reports unknown units", func(t *testing.T) {
		_, err := execute(t, newParseCmd(), "12 parsecs")
		require.Error(t, err)
		assert.ErrorIs(t, err, size.ErrUnknownUnit)

		var parseErr *size.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "12 parsecs", parseErr.Input)
	})

	t.Run("reports malformed numbers", func(t *testing.T) {
		_, err := execute(t, newParseCmd(), "1.2.3 MB")
		assert.ErrorIs(t, err, size.ErrMalformedNumber)
	})
}
