package streams

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func Test_WrapWriter_Lines(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWrapWriter(buf, 4)
	_, err := w.Write([]byte("abcdefghij"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, "abcd\nefgh\nij\n", buf.String())
}

func Test_WrapWriter_ExactLine(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWrapWriter(buf, 4)
	_, err := w.Write([]byte("abcdefgh"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, "abcd\nefgh\n", buf.String())
}

func Test_WrapWriter_CountsRunes(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWrapWriter(buf, 3)
	data := []byte("ÀÁÂÃÄ")
	// Split in the middle of a rune
	_, err := w.Write(data[:3])
	require.NoError(t, err)
	_, err = w.Write(data[3:])
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, "ÀÁÂ\nÃÄ\n", buf.String())
}

func Test_WrapWriter_Disabled(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWrapWriter(buf, 0)
	_, err := w.Write([]byte(strings.Repeat("a", 100)))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, strings.Repeat("a", 100), buf.String())
}

func Test_WrapWriter_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWrapWriter(buf, 76)
	require.NoError(t, w.Close())
	require.Empty(t, buf.String())
}
