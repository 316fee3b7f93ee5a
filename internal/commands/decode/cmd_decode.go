package decode

import (
	"github.com/bokysan/base128/internal/base128"
	"github.com/bokysan/base128/internal/commands/cmdio"
	"github.com/bokysan/base128/internal/logging"
	"github.com/bokysan/base128/internal/streams"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// Command decodes base128 text back into binary. Both padding styles are accepted; whitespace is ignored.
type Command struct {
	Output  string `yaml:"output"  short:"o" long:"output"  env:"BASE128_OUTPUT"  description:"Output file. Defaults to stdout. The file is removed if the input cannot be decoded." default:"-"`
	Charset string `yaml:"charset"           long:"charset" env:"BASE128_CHARSET" description:"Character set of the encoded text" choice:"utf-8" choice:"latin1" default:"utf-8"`
}

func NewCommand() *Command {
	return &Command{
		Output:  cmdio.Stdio,
		Charset: streams.CharsetUTF8,
	}
}

func (c *Command) String() string {
	return "Decode from base128"
}

// Execute decodes the concatenation of the given files (or stdin)
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	in, err := cmdio.OpenInputs(args)
	if err != nil {
		return err
	}
	defer func() {
		if err := in.Close(); err != nil {
			log.WithError(err).Warnf("Could not close input: %v", err)
		}
	}()

	out, err := cmdio.CreateOutput(c.Output)
	if err != nil {
		return err
	}

	n, err := c.Decode(out, in)
	if err != nil {
		out.Discard()
		return errors.Wrapf(err, "Could not decode")
	}
	log.Infof("Decoded %d bytes", n)

	return out.Close()
}

// Decode reads base128 text from r until EOF and writes the decoded data to w. It returns the number of bytes
// written.
func (c *Command) Decode(w io.Writer, r io.Reader) (int64, error) {
	cr, err := streams.NewCharsetReader(r, c.Charset)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(w, base128.NewDecoder(base128.StdEncoding, cr))
	return n, errors.WithStack(err)
}
