package enc

// -------------------------------------------------------

// RawEncoder does not do any translation whatsoever. It is the baseline other encoders are measured
// against.
type RawEncoder struct {
}

func (b *RawEncoder) Name() string {
	return "Raw"
}

func (b *RawEncoder) String() string {
	return describe(b)
}

func (b *RawEncoder) Code() byte {
	return 'R'
}

func (b *RawEncoder) Encode(data []byte) string {
	return string(data)
}

func (b *RawEncoder) Decode(data string) ([]byte, error) {
	return []byte(data), nil
}

func (b *RawEncoder) BlocksizeRaw() int {
	return 1
}

func (b *RawEncoder) BlocksizeEncoded() int {
	return 1
}

func (b *RawEncoder) Ratio() float64 {
	return 1
}
