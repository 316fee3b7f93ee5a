package enc

import (
	"encoding/base64"
	"github.com/pkg/errors"
)

// Base64Encoder encodes 3 bytes to 4 characters. This is the conventional, padded, scheme base128 is
// measured against.
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) String() string {
	return describe(b)
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func (b *Base64Encoder) Decode(data string) ([]byte, error) {
	res, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base64Encoder) BlocksizeRaw() int {
	return 3
}

func (b *Base64Encoder) BlocksizeEncoded() int {
	return 4
}

func (b *Base64Encoder) Ratio() float64 {
	return 4.0 / 3.0
}
