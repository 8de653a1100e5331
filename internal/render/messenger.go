package render

import (
	"fmt"
	"io"
)

// Messenger writes informational messages for non-interactive output.
// A Messenger without a writer discards everything.
type Messenger struct {
	writer io.Writer
}

// NewMessenger creates a messenger. Pass nil to silence it.
func NewMessenger(writer io.Writer) *Messenger {
	return &Messenger{writer: writer}
}

// Printf writes a formatted message.
func (m *Messenger) Printf(format string, args ...interface{}) error {
	if m == nil || m.writer == nil {
		return nil
	}

	_, err := fmt.Fprintf(m.writer, format, args...)

	return err
}
