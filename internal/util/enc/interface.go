package enc

// Encoder is a binary-to-text codec. All codecs of the registry implement it so they can be compared
// against each other.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// BlocksizeRaw returns the block size (number of bytes) this encoder takes at one time
	BlocksizeRaw() int

	// BlocksizeEncoded returns the number of symbols output by this encoder for every input block
	BlocksizeEncoded() int

	// Ratio is the number of symbols per input byte, not counting padding
	Ratio() float64
}
