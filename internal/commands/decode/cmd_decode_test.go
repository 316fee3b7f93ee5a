package decode

import (
	"bytes"
	"github.com/bokysan/base128/internal/base128"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_Decode_Wrapped(t *testing.T) {
	c := NewCommand()
	buf := &bytes.Buffer{}
	n, err := c.Decode(buf, strings.NewReader("0ZtÆã8À÷\n3ÜÍÆg===\n"))
	require.NoError(t, err)
	require.Equal(t, int64(11), n)
	require.Equal(t, "hello world", buf.String())
}

func Test_Decode_Latin1(t *testing.T) {
	c := NewCommand()
	c.Charset = "latin1"
	buf := &bytes.Buffer{}
	_, err := c.Decode(buf, bytes.NewReader([]byte{0xFF, 0xC0, 0xB6}))
	require.NoError(t, err)
	require.Equal(t, []byte{0xff}, buf.Bytes())
}

func Test_Decode_Invalid(t *testing.T) {
	c := NewCommand()
	_, err := c.Decode(ioutil.Discard, strings.NewReader("AAggYQK-"))
	require.ErrorIs(t, err, base128.ErrInvalidSymbol)
}

func Test_Execute_RemovesPartialOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	// The first block is valid, the second one is not
	require.NoError(t, ioutil.WriteFile(input, []byte("AAggYQKG\nAAggYQK-\n"), 0644))

	c := NewCommand()
	c.Output = filepath.Join(dir, "out.bin")
	err := c.Execute([]string{input})
	require.ErrorIs(t, err, base128.ErrInvalidSymbol)

	_, err = os.Stat(c.Output)
	require.True(t, os.IsNotExist(err), "Partial output was not removed")
}

func Test_Execute_Files(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	require.NoError(t, ioutil.WriteFile(input, []byte(base128.Encode([]byte("\x00\x01\x02\x03\x04\x05\x06\x07"))), 0644))

	c := NewCommand()
	c.Output = filepath.Join(dir, "out.bin")
	require.NoError(t, c.Execute([]string{input}))

	data, err := ioutil.ReadFile(c.Output)
	require.NoError(t, err)
	require.Equal(t, []byte("\x00\x01\x02\x03\x04\x05\x06\x07"), data)
}
