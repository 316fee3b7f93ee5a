package enc

import (
	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

// Ascii7Encoder packs 7 bytes into 8 bytes with the high bit cleared. The output is 7-bit safe, but
// not printable: unlike Base128Encoder it uses control characters as well.
type Ascii7Encoder struct {
}

func (b *Ascii7Encoder) Name() string {
	return "Ascii7"
}

func (b *Ascii7Encoder) String() string {
	return describe(b)
}

func (b *Ascii7Encoder) Code() byte {
	return 'A'
}

func (b *Ascii7Encoder) Encode(src []byte) string {
	dst := make([]byte, 0, base128.EncodedLen(len(src)))

	whichByte := uint(1)
	bufByte := byte(0)

	for _, val := range src {
		// Take the current buffer, add the top bits of the current value
		dst = append(dst, bufByte|(val>>whichByte))

		// Keep the remaining low bits for the next output byte
		bufByte = (val & ((1 << whichByte) - 1)) << (7 - whichByte)

		if whichByte == 7 {
			dst = append(dst, bufByte)
			bufByte = 0
			whichByte = 0
		}

		whichByte++
	}

	// A complete 7 byte group leaves nothing behind
	if whichByte > 1 {
		dst = append(dst, bufByte)
	}
	return string(dst)
}

func (b *Ascii7Encoder) Decode(data string) ([]byte, error) {
	res, err := base128.DecodeString(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Ascii7Encoder) BlocksizeRaw() int {
	return 7
}

func (b *Ascii7Encoder) BlocksizeEncoded() int {
	return 8
}

func (b *Ascii7Encoder) Ratio() float64 {
	return 8.0 / 7.0
}
