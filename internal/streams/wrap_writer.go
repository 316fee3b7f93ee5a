package streams

import (
	"github.com/pkg/errors"
	"io"
)

// WrapWriter breaks the text written to it into lines of at most Width symbols. Symbols are counted as
// UTF-8 runes, not bytes, so multi-byte characters take up one column.
type WrapWriter struct {
	w      io.Writer
	width  int
	column int
	buf    []byte
}

// NewWrapWriter creates a new WrapWriter. A width of zero (or less) disables wrapping.
func NewWrapWriter(w io.Writer, width int) *WrapWriter {
	return &WrapWriter{
		w:     w,
		width: width,
	}
}

// Write writes p, inserting a line feed after every width symbols. The input must be valid UTF-8,
// but may be split in the middle of a rune between two writes.
func (ww *WrapWriter) Write(p []byte) (int, error) {
	if ww.width <= 0 {
		return ww.w.Write(p)
	}

	ww.buf = ww.buf[:0]
	for _, b := range p {
		// Continuation bytes never start a new symbol
		if b&0xC0 != 0x80 {
			if ww.column == ww.width {
				ww.buf = append(ww.buf, '\n')
				ww.column = 0
			}
			ww.column++
		}
		ww.buf = append(ww.buf, b)
	}

	if _, err := ww.w.Write(ww.buf); err != nil {
		return 0, errors.WithStack(err)
	}
	return len(p), nil
}

// Close terminates the last line. It does not close the underlying writer.
func (ww *WrapWriter) Close() error {
	if ww.column == 0 {
		return nil
	}
	ww.column = 0
	_, err := ww.w.Write([]byte{'\n'})
	return errors.WithStack(err)
}
