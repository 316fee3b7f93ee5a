package compare

import (
	"bytes"
	"github.com/bokysan/base128/internal/util/enc"
	"github.com/stretchr/testify/require"
	"testing"
)

func find(t *testing.T, results []Result, name string) Result {
	for _, r := range results {
		if r.Encoder.Name() == name {
			return r
		}
	}
	require.Failf(t, "Result not found", "No result for %v", name)
	return Result{}
}

func Test_Compare_ShortInput(t *testing.T) {
	// For one byte base64 needs 4 characters, base128 needs 8 and 3 in the compact form
	results, err := Compare([]byte{1}, enc.All())
	require.NoError(t, err)

	require.Equal(t, 4, find(t, results, "Base64").Symbols)
	require.Equal(t, 8, find(t, results, "Base128").Symbols)
	require.Equal(t, 3, find(t, results, "Base128c").Symbols)
}

func Test_Compare_LongInput(t *testing.T) {
	data := bytes.Repeat([]byte{0x55, 0xaa, 0x01}, 7*100)
	results, err := Compare(data, enc.All())
	require.NoError(t, err)

	base64 := find(t, results, "Base64")
	base128 := find(t, results, "Base128")
	require.Equal(t, 2800, base64.Symbols)
	require.Equal(t, 2400, base128.Symbols)
	require.Less(t, base128.Overhead, base64.Overhead)
	require.InDelta(t, 14.2857, base128.Overhead, 0.001)
}

func Test_Report(t *testing.T) {
	c := NewCommand()
	buf := &bytes.Buffer{}
	require.NoError(t, c.report(buf, "test", []byte("hello world"), enc.All()))
	require.Contains(t, buf.String(), "Base128")
	require.Contains(t, buf.String(), "Base91")
}

func Test_Encoders_Unknown(t *testing.T) {
	c := NewCommand()
	c.Encoders = []string{"base128", "base1024"}
	_, err := c.encoders()
	require.Error(t, err)

	c.Encoders = []string{"base128", "S"}
	encoders, err := c.encoders()
	require.NoError(t, err)
	require.Len(t, encoders, 2)
}

func Test_Execute_Sizes(t *testing.T) {
	c := NewCommand()
	c.Sizes = []int{0, 1, 100}
	require.NoError(t, c.Execute(nil))
}
