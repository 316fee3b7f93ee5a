// Package base128 implements a binary-to-text encoding with 128 symbols. Every 7 bytes of input are
// turned into 8 symbols, a slightly better ratio than the 4:3 of base64.
//
// The alphabet is the base64 table extended with the 64 Latin-1 characters À (U+00C0) through
// ÿ (U+00FF). Input which is not a multiple of 7 bytes is padded with zero bytes; the symbols
// carrying only padding are replaced by padding markers, either one '=' per symbol or, in the
// compact form, a single character standing for 2 to 6 of them.
package base128

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"strings"
)

const (
	// BlockSize is the number of raw bytes in one block.
	BlockSize = 7
	// SymbolsPerBlock is the number of symbols a block is encoded into.
	SymbolsPerBlock = 8
	// PadChar marks one padding symbol.
	PadChar = '='

	// compactMarkerBase + n is the compact marker for n padding symbols: ² ³ ´ µ ¶
	compactMarkerBase = 0xB0
	compactMin        = 2
	compactMax        = BlockSize - 1

	symbolBits = 7
	symbolMask = 1<<symbolBits - 1
)

// paddingSymbols[p] is the number of trailing symbols which carry nothing but the p zero bytes used to
// complete the final block. paddingBytes is its inverse; -1 marks symbol counts no padding produces.
var (
	paddingSymbols [BlockSize]int
	paddingBytes   [SymbolsPerBlock]int
)

func init() {
	for i := range paddingBytes {
		paddingBytes[i] = -1
	}
	for p := range paddingSymbols {
		n := p * 8 / symbolBits
		paddingSymbols[p] = n
		paddingBytes[n] = p
	}
}

// Encoding is a base128 encoding defined by its alphabet and padding style. It is safe for concurrent use.
type Encoding struct {
	alphabet *Alphabet
	compact  bool
}

// StdEncoding uses the standard alphabet and writes one '=' per padding symbol.
var StdEncoding = NewEncoding(StdAlphabet)

// CompactEncoding uses the standard alphabet and writes runs of 2 to 6 padding symbols as a single marker.
var CompactEncoding = StdEncoding.WithCompactPadding()

// NewEncoding returns a new encoding over the given alphabet. It panics if the alphabet contains any of
// the padding markers.
func NewEncoding(alphabet *Alphabet) *Encoding {
	if alphabet.Contains(PadChar) {
		log.Panicf("alphabet contains the padding character %q", PadChar)
	}
	for n := compactMin; n <= compactMax; n++ {
		if m := compactMarker(n); alphabet.Contains(m) {
			log.Panicf("alphabet contains the compact padding marker %q", m)
		}
	}
	return &Encoding{
		alphabet: alphabet,
	}
}

// WithCompactPadding returns a copy of the encoding which writes compact padding markers. Decoding
// accepts both padding styles regardless of this setting.
func (e Encoding) WithCompactPadding() *Encoding {
	e.compact = true
	return &e
}

// Alphabet returns the symbol table of this encoding.
func (e *Encoding) Alphabet() *Alphabet {
	return e.alphabet
}

// Compact reports whether this encoding writes compact padding markers.
func (e *Encoding) Compact() bool {
	return e.compact
}

func compactMarker(n int) rune {
	return rune(compactMarkerBase + n)
}

// CompactMarker returns the marker the compact encoding writes for n padding symbols. There are markers
// for 2 to 6 symbols only.
func CompactMarker(n int) (rune, bool) {
	if n < compactMin || n > compactMax {
		return 0, false
	}
	return compactMarker(n), true
}

// compactCount returns the number of padding symbols r stands for, if r is a compact marker.
func compactCount(r rune) (int, bool) {
	n := int(r) - compactMarkerBase
	if n < compactMin || n > compactMax {
		return 0, false
	}
	return n, true
}

// EncodedLen returns the number of symbols, padding markers included, produced for n bytes of input.
func (e *Encoding) EncodedLen(n int) int {
	if n == 0 {
		return 0
	}
	blocks := (n + BlockSize - 1) / BlockSize
	l := blocks * SymbolsPerBlock
	if e.compact {
		if p := blocks*BlockSize - n; paddingSymbols[p] >= compactMin {
			l = l - paddingSymbols[p] + 1
		}
	}
	return l
}

// DecodedLen returns the maximum number of bytes n symbols decode into.
func (e *Encoding) DecodedLen(n int) int {
	return (n + SymbolsPerBlock - 1) / SymbolsPerBlock * BlockSize
}

// EncodeToString returns the base128 encoding of src.
func (e *Encoding) EncodeToString(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	blocks, padding := chunk(src, BlockSize, 0)
	dst := make([]rune, 0, len(blocks)*SymbolsPerBlock)
	for _, block := range blocks {
		dst = e.encodeBlock(dst, block)
	}

	return string(e.appendPadding(dst, padding))
}

// encodeBlock appends the 8 symbols of a full 7 byte block to dst, most significant first.
func (e *Encoding) encodeBlock(dst []rune, block []byte) []rune {
	var v uint64
	for _, b := range block {
		v = v<<8 | uint64(b)
	}

	var group [SymbolsPerBlock]rune
	for i := SymbolsPerBlock - 1; i >= 0; i-- {
		group[i] = e.alphabet.SymbolAt(int(v & symbolMask))
		v >>= symbolBits
	}

	return append(dst, group[:]...)
}

// appendPadding replaces the trailing symbols of dst which only carry zero filler with padding markers.
func (e *Encoding) appendPadding(dst []rune, padding int) []rune {
	if padding == 0 {
		return dst
	}

	n := paddingSymbols[padding]
	dst = dst[:len(dst)-n]
	if e.compact && n >= compactMin {
		return append(dst, compactMarker(n))
	}
	for i := 0; i < n; i++ {
		dst = append(dst, PadChar)
	}
	return dst
}

// DecodeString returns the bytes represented by the base128 string s. Both padding styles are accepted.
// The error wraps ErrInvalidSymbol or ErrBlockOverflow. No partial result is returned on error.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	body, markers, err := splitPadding([]rune(s))
	if err != nil {
		return nil, err
	}

	blocks, filler := chunk(body, SymbolsPerBlock, e.alphabet.Zero())
	if filler != markers {
		return nil, errors.Wrapf(ErrInvalidSymbol, "final block is %d symbols short but has %d padding markers", filler, markers)
	}

	dst := make([]byte, 0, len(blocks)*BlockSize)
	for i, block := range blocks {
		if dst, err = e.decodeBlock(dst, block, i); err != nil {
			return nil, err
		}
	}

	padding := paddingBytes[markers]
	if padding > 0 {
		tail := dst[len(dst)-padding:]
		for _, b := range tail {
			if b != 0 {
				last := len(blocks) - 1
				log.WithField("block", last).Warnf("Padding bytes of the final block are not zero: %x", tail)
				if log.IsLevelEnabled(log.TraceLevel) {
					log.Tracef("Offending block:\n%s", spew.Sdump(blocks[last]))
				}
				return nil, errors.Wrapf(ErrBlockOverflow, "final block overflows into %d padding bytes", padding)
			}
		}
		dst = dst[:len(dst)-padding]
	}

	return dst, nil
}

// splitPadding strips the padding markers from the end of symbols and returns the number of padding symbols
// they stand for.
func splitPadding(symbols []rune) ([]rune, int, error) {
	n := len(symbols)
	if count, ok := compactCount(symbols[n-1]); ok {
		return symbols[:n-1], count, nil
	}

	markers := 0
	for markers < n && symbols[n-1-markers] == PadChar {
		markers++
	}
	if markers >= SymbolsPerBlock || paddingBytes[markers] < 0 {
		return nil, 0, errors.Wrapf(ErrInvalidSymbol, "%d padding markers", markers)
	}

	return symbols[:n-markers], markers, nil
}

// decodeBlock folds the 8 symbols of block number i into a 56-bit value and appends its 7 bytes to dst.
// Eight 7-bit symbols always fit, so only unknown symbols fail.
func (e *Encoding) decodeBlock(dst []byte, block []rune, i int) ([]byte, error) {
	var v uint64
	for j, r := range block {
		idx, err := e.alphabet.IndexOf(r)
		if err != nil {
			return nil, errors.Wrapf(err, "offset %d", i*SymbolsPerBlock+j)
		}
		v = v<<symbolBits | uint64(idx)
	}

	var buf [BlockSize]byte
	for k := BlockSize - 1; k >= 0; k-- {
		buf[k] = byte(v)
		v >>= 8
	}

	return append(dst, buf[:]...), nil
}

// Encode returns the StdEncoding encoding of src.
func Encode(src []byte) string {
	return StdEncoding.EncodeToString(src)
}

// Decode decodes s, which may use either padding style.
func Decode(s string) ([]byte, error) {
	return StdEncoding.DecodeString(s)
}

// Strip removes all whitespace from s, e.g. the line breaks of wrapped output.
func Strip(s string) string {
	return strings.Join(strings.Fields(s), "")
}
