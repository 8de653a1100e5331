//nolint:testpackage // internal functions require same package
package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dennisklein/size"
	"github.com/dennisklein/size/internal/testutil"
)

func TestRenderer(t *testing.T) {
	t.Run("writes size rows", func(t *testing.T) {
		var buf bytes.Buffer

		r := New(&buf, size.NewFormatter())

		err := r.SizeRow("/data/a.bin", size.FromBytes(1_340_249))
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "1.28 MiB")
		assert.Contains(t, output, "/data/a.bin")
	})

	t.Run("uses the configured formatter", func(t *testing.T) {
		var buf bytes.Buffer

		f := size.NewFormatter().WithBase(size.Base10).WithStyle(size.Full)
		r := New(&buf, f)

		assert.Equal(t, "1.34 Megabytes", r.Size(size.FromBytes(1_340_249)))
	})

	t.Run("writes share rows", func(t *testing.T) {
		var buf bytes.Buffer

		r := New(&buf, size.NewFormatter())

		err := r.ShareRow("logs", size.FromMiB(1), size.FromMiB(4))
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "1.00 MiB")
		assert.Contains(t, output, "25%")
		assert.Contains(t, output, "logs")
	})

	t.Run("writes total row", func(t *testing.T) {
		var buf bytes.Buffer

		r := New(&buf, size.NewFormatter())

		err := r.TotalRow("total", size.FromGiB(2))
		require.NoError(t, err)

		output := buf.String()
		assert.True(t, len(output) > 0 && output[0] == '\n')
		assert.Contains(t, output, "2.00 GiB")
		assert.Contains(t, output, "total")
	})

	t.Run("reports write errors", func(t *testing.T) {
		writeErr := errors.New("disk full")
		r := New(testutil.NewErrorWriter(writeErr), size.NewFormatter())

		err := r.SizeRow("x", size.FromBytes(1))
		require.Error(t, err)
		assert.ErrorIs(t, err, writeErr)
		assert.Contains(t, err.Error(), "failed to write output")

		assert.Error(t, r.ShareRow("x", size.FromBytes(1), size.FromBytes(2)))
		assert.Error(t, r.TotalRow("x", size.FromBytes(1)))
	})
}

func TestFraction(t *testing.T) {
	//nolint:govet // fieldalignment: test readability over optimization
	tests := []struct {
		name  string
		part  size.Size
		total size.Size
		want  float64
	}{
		{name: "half", part: size.FromKiB(1), total: size.FromKiB(2), want: 0.5},
		{name: "zero total", part: size.FromKiB(1), total: size.Size{}, want: 0},
		{name: "negative part", part: size.FromKiB(-1), total: size.FromKiB(2), want: 0},
		{name: "clamped", part: size.FromKiB(3), total: size.FromKiB(2), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Fraction(tt.part, tt.total), 1e-9)
		})
	}
}

func TestMessenger(t *testing.T) {
	t.Run("writes messages", func(t *testing.T) {
		var buf bytes.Buffer

		m := NewMessenger(&buf)
		require.NoError(t, m.Printf("scanning %d paths\n", 3))
		assert.Equal(t, "scanning 3 paths\n", buf.String())
	})

	t.Run("nil writer discards", func(t *testing.T) {
		assert.NoError(t, NewMessenger(nil).Printf("ignored"))
	})

	t.Run("nil messenger discards", func(t *testing.T) {
		var m *Messenger
		assert.NoError(t, m.Printf("ignored"))
	})

	t.Run("returns write errors", func(t *testing.T) {
		writeErr := errors.New("broken pipe")
		m := NewMessenger(testutil.NewErrorWriter(writeErr))
		assert.ErrorIs(t, m.Printf("x"), writeErr)
	})
}
