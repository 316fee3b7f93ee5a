package enc

import (
	"github.com/stretchr/testify/require"
	"testing"
)

var encoderTests = [][]byte{
	[]byte(""),
	[]byte("a"),
	[]byte("Man"),
	[]byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
		"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
		"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277"),
	[]byte("aA-Aaahhh-Drink-mal-ein-J\344germeister-"),
}

func Test_Encoders_RoundTrip(t *testing.T) {
	for _, encoder := range All() {
		for _, encoderTest := range encoderTests {
			encoded := encoder.Encode(encoderTest)
			decoded, err := encoder.Decode(encoded)
			require.NoErrorf(t, err, "%v could not decode %q", encoder, encoded)
			require.Equal(t, len(encoderTest), len(decoded), "%v", encoder)
			if len(encoderTest) > 0 {
				require.Equal(t, encoderTest, decoded, "%v", encoder)
			}
		}
	}
}

func Test_Encoders_UniqueNames(t *testing.T) {
	names := make(map[string]bool)
	codes := make(map[byte]bool)
	for _, encoder := range All() {
		require.False(t, names[encoder.Name()], "Duplicate name %v", encoder.Name())
		require.False(t, codes[encoder.Code()], "Duplicate code %v", string(encoder.Code()))
		names[encoder.Name()] = true
		codes[encoder.Code()] = true
		require.InDelta(t, float64(encoder.BlocksizeEncoded())/float64(encoder.BlocksizeRaw()), encoder.Ratio(), 0.0001)
	}
}

func Test_ByName(t *testing.T) {
	e, err := ByName("base128")
	require.NoError(t, err)
	require.Equal(t, "Base128", e.Name())

	e, err = ByName("C")
	require.NoError(t, err)
	require.Equal(t, "Base128c", e.Name())

	_, err = ByName("base1024")
	require.Error(t, err)

	require.Contains(t, Names(), "Base91")
}

func Test_Base128Encoder_Padding(t *testing.T) {
	std := &Base128Encoder{}
	compact := &Base128Encoder{Compact: true}

	require.Equal(t, "mØtà====", std.Encode([]byte("Man")))
	require.Equal(t, "mØtà´", compact.Encode([]byte("Man")))

	// Both decoders understand both padding styles
	for _, e := range []Encoder{std, compact} {
		decoded, err := e.Decode("mØtà´")
		require.NoError(t, err)
		require.Equal(t, []byte("Man"), decoded)
	}
}

func Test_Base128Encoder_ShorterThanBase64(t *testing.T) {
	data := make([]byte, 7*300)
	base64 := len((&Base64Encoder{}).Encode(data))
	base128 := len([]rune((&Base128Encoder{}).Encode(data)))
	require.Less(t, base128, base64)
}

func Test_Ascii7Encoder_SevenBitOutput(t *testing.T) {
	e := &Ascii7Encoder{}
	data := make([]byte, 0, 30)
	for i := 0; i < 30; i++ {
		encoded := e.Encode(data)
		require.Len(t, encoded, (len(data)*8+6)/7)
		for _, c := range []byte(encoded) {
			require.Zero(t, c&0x80, "high bit set in %q", encoded)
		}

		decoded, err := e.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, len(data), len(decoded))
		if len(data) > 0 {
			require.Equal(t, data, decoded)
		}

		// Alternate zero and one bits so every shift position is hit
		data = append(data, byte(0x55+i*0x53))
	}

	require.Equal(t, "0@", e.Encode([]byte("a")))
}
