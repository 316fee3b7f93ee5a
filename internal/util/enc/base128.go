package enc

import (
	"github.com/bokysan/base128/internal/base128"
)

// Base128Encoder encodes 7 bytes to 8 characters, see package base128.
type Base128Encoder struct {
	// Compact writes a single marker instead of a run of padding characters
	Compact bool
}

func (b *Base128Encoder) encoding() *base128.Encoding {
	if b.Compact {
		return base128.CompactEncoding
	}
	return base128.StdEncoding
}

func (b *Base128Encoder) Name() string {
	if b.Compact {
		return "Base128c"
	}
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return describe(b)
}

func (b *Base128Encoder) Code() byte {
	if b.Compact {
		return 'C'
	}
	return 'V'
}

func (b *Base128Encoder) Encode(src []byte) string {
	return b.encoding().EncodeToString(src)
}

// Decode accepts either padding style.
func (b *Base128Encoder) Decode(data string) ([]byte, error) {
	return b.encoding().DecodeString(data)
}

func (b *Base128Encoder) BlocksizeRaw() int {
	return base128.BlockSize
}

func (b *Base128Encoder) BlocksizeEncoded() int {
	return base128.SymbolsPerBlock
}

func (b *Base128Encoder) Ratio() float64 {
	return 8.0 / 7.0
}
