package main

import (
	"fmt"
	"github.com/bokysan/base128/internal/args"
	"github.com/bokysan/base128/internal/commands/compare"
	"github.com/bokysan/base128/internal/commands/decode"
	"github.com/bokysan/base128/internal/commands/encode"
	"github.com/bokysan/base128/internal/commands/serve"
	"github.com/bokysan/base128/internal/commands/version"
	b128Flags "github.com/bokysan/base128/internal/flags"
	"github.com/bokysan/base128/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Base128 is the main executable
type Base128 struct {
	parser *flags.Parser
}

// NewBase128 will create a new instance of Base128 and initialize the parser
func NewBase128() *Base128 {
	executablePath := path.Base(os.Args[0])

	b := &Base128{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.addCommand("encode", "Encode binary data", "Encode files (or stdin) into base128 text", encode.NewCommand())
	b.addCommand("decode", "Decode base128 text", "Decode base128 text from files (or stdin) back into binary data", decode.NewCommand())
	b.addCommand("compare", "Compare encoders", "Show the size of the output of every known encoder for the given input", compare.NewCommand())
	b.addCommand("serve", "Run the server", "Run an HTTP and websocket server encoding and decoding requests", serve.NewCommand())
	b.addCommand("version", "Print the version", "Print the application version and exit", &version.Command{})

	return b
}

// setupGeneral will configure general options
func (b *Base128) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// addCommand registers a sub-command
func (b *Base128) addCommand(name, short, long string, data interface{}) {
	_, err := b.parser.AddCommand(name, short, long, data)
	util.MustErrorNilOrExit(err)
}

// main starts base128 and reads the configuration file
func main() {
	b := NewBase128()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := b128Flags.NewYamlParser(b.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)
}
