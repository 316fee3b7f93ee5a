package encode

import (
	"github.com/bokysan/base128/internal/base128"
	"github.com/bokysan/base128/internal/commands/cmdio"
	"github.com/bokysan/base128/internal/logging"
	"github.com/bokysan/base128/internal/streams"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// Command encodes binary input into base128 text
type Command struct {
	Output  string `yaml:"output"  short:"o" long:"output"  env:"BASE128_OUTPUT"  description:"Output file. Defaults to stdout." default:"-"`
	Wrap    int    `yaml:"wrap"    short:"w" long:"wrap"    env:"BASE128_WRAP"    description:"Wrap encoded lines after this many characters. 0 disables wrapping." default:"76"`
	Compact bool   `yaml:"compact"           long:"compact" env:"BASE128_COMPACT" description:"Write a run of padding characters as a single marker character"`
	Charset string `yaml:"charset"           long:"charset" env:"BASE128_CHARSET" description:"Character set of the encoded text" choice:"utf-8" choice:"latin1" default:"utf-8"`
}

func NewCommand() *Command {
	return &Command{
		Output:  cmdio.Stdio,
		Wrap:    76,
		Charset: streams.CharsetUTF8,
	}
}

func (c *Command) String() string {
	return "Encode to base128"
}

func (c *Command) encoding() *base128.Encoding {
	if c.Compact {
		return base128.CompactEncoding
	}
	return base128.StdEncoding
}

// Execute encodes the concatenation of the given files (or stdin)
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

	n, err := c.Encode(out, in)
	if err != nil {
		out.Discard()
		return errors.Wrapf(err, "Could not encode")
	}
	log.Infof("Encoded %d bytes", n)

	return out.Close()
}

// Encode reads r until EOF and writes its base128 encoding to w. It returns the number of bytes read.
func (c *Command) Encode(w io.Writer, r io.Reader) (int64, error) {
	cw, err := streams.NewCharsetWriter(w, c.Charset)
	if err != nil {
		return 0, err
	}
	ww := streams.NewWrapWriter(cw, c.Wrap)
	enc := base128.NewEncoder(c.encoding(), ww)

	n, err := io.Copy(enc, r)
	if err != nil {
		return n, errors.WithStack(err)
	}

	// The encoder feeds the wrapper, which feeds the charset writer: close them in that order
	var errs error
	for _, closer := range []io.Closer{enc, ww, cw} {
		if err := closer.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return n, errs
}
