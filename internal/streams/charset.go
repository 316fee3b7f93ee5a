package streams

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"io"
	"strings"
)

const (
	// CharsetUTF8 keeps the text as-is. Symbols from the upper half of the base128 alphabet take up two bytes.
	CharsetUTF8 = "utf-8"
	// CharsetLatin1 writes every symbol as a single ISO-8859-1 byte.
	CharsetLatin1 = "latin1"
)

// nopWriteCloser adds a no-op Close to a writer
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// NormalizeCharset maps the accepted spellings of a charset name to CharsetUTF8 or CharsetLatin1. An empty
// name means UTF-8.
func NormalizeCharset(charset string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf8", "utf-8":
		return CharsetUTF8, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return CharsetLatin1, nil
	default:
		return "", errors.Errorf("unsupported charset: %q", charset)
	}
}

// NewCharsetWriter returns a writer which converts UTF-8 text into the given charset before writing it to
// w. Close must be called to flush any buffered data; it does not close w.
func NewCharsetWriter(w io.Writer, charset string) (io.WriteCloser, error) {
	cs, err := NormalizeCharset(charset)
	if err != nil {
		return nil, err
	}
	if cs == CharsetLatin1 {
		return transform.NewWriter(w, charmap.ISO8859_1.NewEncoder()), nil
	}
	return nopWriteCloser{w}, nil
}

// NewCharsetReader returns a reader which converts text in the given charset read from r into UTF-8.
func NewCharsetReader(r io.Reader, charset string) (io.Reader, error) {
	cs, err := NormalizeCharset(charset)
	if err != nil {
		return nil, err
	}
	if cs == CharsetLatin1 {
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	}
	return r, nil
}
