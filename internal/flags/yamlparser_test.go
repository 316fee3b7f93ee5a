package flags

import (
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

type generalCommand struct {
	Compact bool   `yaml:"compact" long:"compact" description:"Use compact padding"`
	File    string `yaml:"file"    long:"file"`
}

func (c *generalCommand) Execute(args []string) error {
	return nil
}

type options struct {
	Wrap int `yaml:"wrap" long:"wrap" default:"76"`
}

func newParser(t *testing.T) (*flags.Parser, *generalCommand, *options) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)

	data := &generalCommand{}
	_, err := parser.AddCommand("general", "General", "General options", data)
	require.NoErrorf(t, err, "Could not add general command")

	opts := &options{}
	_, err = parser.AddGroup("Options", "Output options", opts)
	require.NoErrorf(t, err, "Could not add options group")

	return parser, data, opts
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)
	err := yamlParser.ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_GeneralParse(t *testing.T) {
	file := "testdata/general.yml"

	parser, data, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, true, data.Compact, "Invalid reading of boolean value")
	require.Equal(t, "something.txt", data.File, "Invalid reading of string value")
}

func Test_GroupAndSegmentsParse(t *testing.T) {
	file := "testdata/options.yml"

	parser, data, opts := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, 64, opts.Wrap, "Invalid reading of group value")
	require.Equal(t, "other.txt", data.File, "Invalid reading of second segment")
}

func Test_InvalidGeneralParse(t *testing.T) {
	file := "testdata/invalid_general.yml"

	parser, _, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"

	parser, _, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
}

func Test_MissingFile(t *testing.T) {
	parser, _, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile("testdata/does-not-exist.yml")
	require.Error(t, err)
}

func Test_ParseReader(t *testing.T) {
	parser, data, _ := newParser(t)
	err := NewYamlParser(parser).Parse(strings.NewReader("general:\n  file: inline.txt\n"))
	require.NoError(t, err)
	require.Equal(t, "inline.txt", data.File)
}
