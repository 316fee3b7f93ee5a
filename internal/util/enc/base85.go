package enc

import (
	"encoding/ascii85"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "Base85"
}

func (b *Base85Encoder) String() string {
	return describe(b)
}

func (b *Base85Encoder) Code() byte {
	return 'W'
}

func (b *Base85Encoder) Encode(data []byte) string {
	dst := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(dst, data)
	return string(dst[:n])
}

func (b *Base85Encoder) Decode(data string) ([]byte, error) {
	// A group of zeros is written as 'z', which expands to 4 bytes
	dst := make([]byte, 4*len(data))
	ndst, _, err := ascii85.Decode(dst, []byte(data), true)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return dst[:ndst], nil
}

func (b *Base85Encoder) BlocksizeRaw() int {
	return 4
}

func (b *Base85Encoder) BlocksizeEncoded() int {
	return 5
}

func (b *Base85Encoder) Ratio() float64 {
	return 1.25
}
