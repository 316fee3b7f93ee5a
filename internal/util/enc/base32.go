package enc

import (
	"encoding/base32"
	"github.com/pkg/errors"
)

// Base32Encoder encodes 5 bytes to 8 characters. Good because it's not case-sensitive.
type Base32Encoder struct {
}

func (b *Base32Encoder) Name() string {
	return "Base32"
}

func (b *Base32Encoder) String() string {
	return describe(b)
}

func (b *Base32Encoder) Code() byte {
	return 'T'
}

func (b *Base32Encoder) Encode(data []byte) string {
	return base32.StdEncoding.EncodeToString(data)
}

func (b *Base32Encoder) Decode(data string) ([]byte, error) {
	res, err := base32.StdEncoding.DecodeString(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base32Encoder) BlocksizeRaw() int {
	return 5
}

func (b *Base32Encoder) BlocksizeEncoded() int {
	return 8
}

func (b *Base32Encoder) Ratio() float64 {
	return 8.0 / 5.0
}
