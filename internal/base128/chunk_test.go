package base128

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Chunk_Empty(t *testing.T) {
	groups, padding := chunk([]byte{}, BlockSize, 0)
	require.Empty(t, groups)
	require.Equal(t, 0, padding)
}

func Test_Chunk_Multiple(t *testing.T) {
	src := []byte("abcdefghijklmn")
	groups, padding := chunk(src, BlockSize, 0)
	require.Equal(t, 0, padding)
	require.Equal(t, [][]byte{[]byte("abcdefg"), []byte("hijklmn")}, groups)
}

func Test_Chunk_Short(t *testing.T) {
	groups, padding := chunk([]byte("ab"), BlockSize, 0)
	require.Equal(t, 5, padding)
	require.Equal(t, [][]byte{{'a', 'b', 0, 0, 0, 0, 0}}, groups)
}

func Test_Chunk_Filler(t *testing.T) {
	src := []rune("ABCDEFGHIJ")
	groups, padding := chunk(src, SymbolsPerBlock, '#')
	require.Equal(t, 6, padding)
	require.Len(t, groups, 2)
	require.Equal(t, "IJ######", string(groups[1]))

	// The source must not be touched by padding
	require.Equal(t, "ABCDEFGHIJ", string(src))
}

func Test_Chunk_PaddingBounds(t *testing.T) {
	for n := 0; n < 50; n++ {
		_, padding := chunk(make([]byte, n), BlockSize, 0)
		require.GreaterOrEqual(t, padding, 0)
		require.Less(t, padding, BlockSize)
		require.Equal(t, 0, (n+padding)%BlockSize)
	}
}

func Test_PaddingTables(t *testing.T) {
	require.Equal(t, [BlockSize]int{0, 1, 2, 3, 4, 5, 6}, paddingSymbols)
	require.Equal(t, -1, paddingBytes[7])
	for p, n := range paddingSymbols {
		require.Equal(t, p, paddingBytes[n])
	}
}
