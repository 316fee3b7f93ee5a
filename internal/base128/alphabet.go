package base128

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// AlphabetSize is the number of distinct symbols. Each symbol carries 7 bits.
	AlphabetSize = 128

	// cb64 is the conventional base64 table. It makes up the first half of the alphabet.
	cb64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// latin1First and latin1Last delimit the upper half of the alphabet: Latin-1 À (U+00C0) through ÿ (U+00FF).
	latin1First = 0xC0
	latin1Last  = 0xFF

	// maxSymbol is the largest code point an alphabet may use. Every symbol must fit into one Latin-1 byte.
	maxSymbol = 0xFF
)

// StdAlphabet is the canonical 128 symbol table: the base64 table followed by U+00C0..U+00FF in
// ascending order. Both sides of a transfer must use the very same table.
var StdAlphabet = NewAlphabet(stdAlphabetString())

func stdAlphabetString() string {
	sb := strings.Builder{}
	sb.WriteString(cb64)
	for r := rune(latin1First); r <= latin1Last; r++ {
		sb.WriteRune(r)
	}
	return sb.String()
}

// Alphabet maps 7-bit values to printable symbols and back. It is immutable once created.
type Alphabet struct {
	encode [AlphabetSize]rune
	decode [maxSymbol + 1]int16
}

// NewAlphabet creates a new alphabet from the given string.
//
// It panics if the string does not contain exactly 128 distinct printable symbols
// from the Latin-1 range.
func NewAlphabet(s string) *Alphabet {
	if n := utf8.RuneCountInString(s); n != AlphabetSize {
		log.Panicf("alphabets must be %d symbols long, got %d", AlphabetSize, n)
	}

	ret := new(Alphabet)
	for i := range ret.decode {
		ret.decode[i] = -1
	}

	i := 0
	for _, r := range s {
		if r > maxSymbol || !unicode.IsPrint(r) || unicode.IsSpace(r) {
			log.Panicf("alphabet symbol %q at %d is not a printable Latin-1 character", r, i)
		}
		if ret.decode[r] != -1 {
			log.Panicf("alphabet symbol %q at %d is a duplicate", r, i)
		}
		ret.encode[i] = r
		ret.decode[r] = int16(i)
		i++
	}

	return ret
}

// SymbolAt returns the symbol representing the 7-bit value v. It panics if v is not in 0..127.
func (a *Alphabet) SymbolAt(v int) rune {
	if v < 0 || v >= AlphabetSize {
		log.Panicf("symbol index %d is out of range 0..%d", v, AlphabetSize-1)
	}
	return a.encode[v]
}

// IndexOf returns the 7-bit value represented by symbol r or ErrInvalidSymbol if r is not part of the alphabet.
func (a *Alphabet) IndexOf(r rune) (int, error) {
	if r < 0 || r > maxSymbol || a.decode[r] < 0 {
		return 0, errors.Wrapf(ErrInvalidSymbol, "%q is not in the alphabet", r)
	}
	return int(a.decode[r]), nil
}

// Contains checks if r is a symbol of this alphabet.
func (a *Alphabet) Contains(r rune) bool {
	return r >= 0 && r <= maxSymbol && a.decode[r] >= 0
}

// Zero is the symbol of value 0. It stands in for padding markers while decoding.
func (a *Alphabet) Zero() rune {
	return a.encode[0]
}

func (a *Alphabet) String() string {
	return string(a.encode[:])
}
