package streams

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"testing"
)

func Test_Charset_Latin1(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewCharsetWriter(buf, "latin1")
	require.NoError(t, err)
	_, err = w.Write([]byte("AÀÿ="))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, []byte{'A', 0xC0, 0xFF, '='}, buf.Bytes())

	r, err := NewCharsetReader(bytes.NewReader(buf.Bytes()), "ISO-8859-1")
	require.NoError(t, err)
	back, err := ioutil.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "AÀÿ=", string(back))
}

func Test_Charset_UTF8(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewCharsetWriter(buf, "UTF-8")
	require.NoError(t, err)
	_, err = w.Write([]byte("AÀÿ="))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, "AÀÿ=", buf.String())
}

func Test_Charset_Unknown(t *testing.T) {
	_, err := NewCharsetWriter(&bytes.Buffer{}, "ebcdic")
	require.Error(t, err)
	_, err = NewCharsetReader(&bytes.Buffer{}, "ebcdic")
	require.Error(t, err)
}
