package cmdio

import (
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func Test_OpenInputs_Concatenates(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, ioutil.WriteFile(a, []byte("hello "), 0644))
	require.NoError(t, ioutil.WriteFile(b, []byte("world"), 0644))

	in, err := OpenInputs([]string{a, b})
	require.NoError(t, err)
	defer in.Close()

	data, err := ioutil.ReadAll(in)
	require.NoError(t, err)
	require.Equal(t, "hello world", string(data))
}

func Test_OpenInputs_Missing(t *testing.T) {
	dir := t.TempDir()
	_, err := OpenInputs([]string{filepath.Join(dir, "x"), filepath.Join(dir, "y")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 errors occurred")
}

func Test_Output_Discard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	out, err := CreateOutput(path)
	require.NoError(t, err)

	_, err = out.WriteString("partial")
	require.NoError(t, err)
	out.Discard()

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err), "Discarded output still exists")
}

func Test_Output_Close(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	out, err := CreateOutput(path)
	require.NoError(t, err)

	_, err = out.WriteString("complete")
	require.NoError(t, err)
	require.NoError(t, out.Close())

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "complete", string(data))
}
