package base128

import (
	"bufio"
	"github.com/pkg/errors"
	"io"
	"unicode"
)

// streamBlocks is the number of blocks the stream encoder and decoder process at once.
const streamBlocks = 512

type encoder struct {
	enc    *Encoding
	w      io.Writer
	buf    [BlockSize]byte
	nbuf   int
	out    []rune
	err    error
	closed bool
}

// NewEncoder returns a stream encoder. Data written to the returned writer is encoded and written to w.
// Partial blocks are held back until more data arrives; the caller must Close the encoder to flush the
// final block and its padding. Closing does not close w.
func NewEncoder(enc *Encoding, w io.Writer) io.WriteCloser {
	return &encoder{
		enc: enc,
		w:   w,
		out: make([]rune, 0, streamBlocks*SymbolsPerBlock),
	}
}

func (e *encoder) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.closed {
		return 0, errors.New("write to a closed base128 encoder")
	}

	// Complete a leftover block first
	if e.nbuf > 0 {
		i := copy(e.buf[e.nbuf:], p)
		e.nbuf += i
		n += i
		p = p[i:]
		if e.nbuf < BlockSize {
			return n, nil
		}
		e.out = e.enc.encodeBlock(e.out, e.buf[:])
		e.nbuf = 0
	}

	for len(p) >= BlockSize {
		e.out = e.enc.encodeBlock(e.out, p[:BlockSize])
		p = p[BlockSize:]
		n += BlockSize
		if len(e.out) >= streamBlocks*SymbolsPerBlock {
			if e.err = e.flush(); e.err != nil {
				return n, e.err
			}
		}
	}

	n += copy(e.buf[:], p)
	e.nbuf = len(p)

	e.err = e.flush()
	return n, e.err
}

// Close encodes the remaining bytes, padding included.
func (e *encoder) Close() error {
	if e.closed || e.err != nil {
		return e.err
	}
	e.closed = true

	if e.nbuf > 0 {
		padding := BlockSize - e.nbuf
		for i := e.nbuf; i < BlockSize; i++ {
			e.buf[i] = 0
		}
		e.out = e.enc.appendPadding(e.enc.encodeBlock(e.out, e.buf[:]), padding)
		e.nbuf = 0
	}

	e.err = e.flush()
	return e.err
}

func (e *encoder) flush() error {
	if len(e.out) == 0 {
		return nil
	}
	_, err := io.WriteString(e.w, string(e.out))
	e.out = e.out[:0]
	return errors.WithStack(err)
}

// -------------------------------------------------------

type decoder struct {
	enc    *Encoding
	r      *bufio.Reader
	group  []rune
	block  int
	marked bool
	out    []byte
	err    error
}

// NewDecoder returns a stream decoder reading base128 text from r. Whitespace is skipped. Blocks are
// decoded as they arrive, so data of earlier blocks may already have been returned when an error in a
// later block is found.
func NewDecoder(enc *Encoding, r io.Reader) io.Reader {
	return &decoder{
		enc:   enc,
		r:     bufio.NewReader(r),
		group: make([]rune, 0, SymbolsPerBlock+1),
	}
}

func (d *decoder) Read(p []byte) (int, error) {
	for len(d.out) == 0 && d.err == nil {
		d.fill()
	}
	if len(d.out) > 0 {
		n := copy(p, d.out)
		d.out = d.out[n:]
		return n, nil
	}
	return 0, d.err
}

// fill decodes up to streamBlocks blocks into d.out.
func (d *decoder) fill() {
	d.out = d.out[:0]
	for len(d.out) < streamBlocks*BlockSize {
		r, _, err := d.r.ReadRune()
		if err == io.EOF {
			d.finish()
			return
		} else if err != nil {
			d.err = errors.WithStack(err)
			return
		}
		if unicode.IsSpace(r) {
			continue
		}

		if _, ok := compactCount(r); ok || r == PadChar {
			d.marked = true
		} else if d.marked {
			d.err = errors.Wrapf(ErrInvalidSymbol, "block %d: symbol %q after padding", d.block, r)
			return
		}

		d.group = append(d.group, r)
		if len(d.group) > SymbolsPerBlock {
			d.err = errors.Wrapf(ErrInvalidSymbol, "block %d: padding markers are not at the end of the input", d.block)
			return
		}
		if len(d.group) == SymbolsPerBlock && !d.marked {
			if d.out, err = d.enc.decodeBlock(d.out, d.group, d.block); err != nil {
				d.err = err
				return
			}
			d.group = d.group[:0]
			d.block++
		}
	}
}

// finish decodes the final, possibly padded, block.
func (d *decoder) finish() {
	d.err = io.EOF
	if len(d.group) == 0 {
		return
	}

	res, err := d.enc.DecodeString(string(d.group))
	if err != nil {
		d.err = errors.Wrapf(err, "block %d", d.block)
		return
	}
	d.out = append(d.out, res...)
	d.group = d.group[:0]
}
