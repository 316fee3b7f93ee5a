package main

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_NewBase128_Commands(t *testing.T) {
	b := NewBase128()
	for _, name := range []string{"encode", "decode", "compare", "serve", "version"} {
		require.NotNil(t, b.parser.Find(name), "Command %v is not registered", name)
	}
}

func Test_Parse_Encode(t *testing.T) {
	b := NewBase128()
	_, err := b.parser.ParseArgs([]string{"-v", "-v", "encode", "--help"})
	require.Error(t, err)

	command := b.parser.Find("encode")
	require.NotNil(t, command.FindOptionByLongName("wrap"))
	require.NotNil(t, command.FindOptionByLongName("compact"))
}
