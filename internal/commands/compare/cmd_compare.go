package compare

import (
	"bytes"
	"fmt"
	"github.com/bokysan/base128/internal/commands/cmdio"
	"github.com/bokysan/base128/internal/logging"
	"github.com/bokysan/base128/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"math/rand"
	"unicode/utf8"
)

const (
	Bold       = "\x1b[1m"
	Reset      = "\x1b[0m"
	DarkGray   = "\x1b[90m"
	White      = "\x1b[97m"
	LightRed   = "\x1b[91m"
	LightGreen = "\x1b[92m"
)

// Command shows how large the output of every known encoder is for the given inputs. Base128 pays for its
// 8:7 ratio with up to 6 padding characters, so for short inputs base64 is often smaller.
type Command struct {
	Sizes    []int    `yaml:"sizes"    short:"s" long:"size"    description:"Compare on random data of this size instead of files. May be repeated."`
	Encoders []string `yaml:"encoders" short:"e" long:"encoder" description:"Only compare these encoders (name or one-letter code). May be repeated."`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Compare encoders"
}

// Result is the outcome of one encoder on one input
type Result struct {
	Encoder  enc.Encoder
	Input    int
	Symbols  int
	Bytes    int
	Overhead float64
}

// Execute compares the encoders on every input file (or on stdin) and on random data of the requested sizes
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	encoders, err := c.encoders()
	if err != nil {
		return err
	}

	out := ansi.NewAnsiStdout()

	var errs error
	for _, size := range c.Sizes {
		data := make([]byte, size)
		rand.Read(data)
		if err := c.report(out, fmt.Sprintf("%d random bytes", size), data, encoders); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if len(c.Sizes) > 0 && len(args) == 0 {
		return errs
	}
	if len(args) == 0 {
		args = []string{cmdio.Stdio}
	}

	for _, path := range args {
		data, err := readInput(path)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if err := c.report(out, path, data, encoders); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs
}

func (c *Command) encoders() ([]enc.Encoder, error) {
	if len(c.Encoders) == 0 {
		return enc.All(), nil
	}

	var errs error
	res := make([]enc.Encoder, 0, len(c.Encoders))
	for _, name := range c.Encoders {
		e, err := enc.ByName(name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		res = append(res, e)
	}
	return res, errs
}

func readInput(path string) ([]byte, error) {
	in, err := cmdio.OpenInputs([]string{path})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := in.Close(); err != nil {
			log.WithError(err).Warnf("Could not close %v", path)
		}
	}()

	data, err := ioutil.ReadAll(in)
	return data, errors.Wrapf(err, "Could not read %v", path)
}

// Compare runs every encoder over data and checks that the result decodes back to data.
func Compare(data []byte, encoders []enc.Encoder) ([]Result, error) {
	var errs error
	res := make([]Result, 0, len(encoders))
	for _, e := range encoders {
		encoded := e.Encode(data)
		decoded, err := e.Decode(encoded)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "%v", e.Name()))
			continue
		} else if !bytes.Equal(data, decoded) {
			errs = multierror.Append(errs, errors.Errorf("%v: round trip failed", e.Name()))
			continue
		}

		r := Result{
			Encoder: e,
			Input:   len(data),
			Symbols: utf8.RuneCountInString(encoded),
			Bytes:   len(encoded),
		}
		if len(data) > 0 {
			r.Overhead = float64(r.Symbols-len(data)) / float64(len(data)) * 100
		}
		res = append(res, r)
	}
	return res, errs
}

//goland:noinspection GoUnhandledErrorResult
func (c *Command) report(w io.Writer, title string, data []byte, encoders []enc.Encoder) error {
	results, err := Compare(data, encoders)

	best := -1
	for i, r := range results {
		if r.Encoder.Name() == "Raw" || r.Encoder.Name() == "Ascii7" {
			// Not printable
			continue
		}
		if best < 0 || r.Symbols < results[best].Symbols {
			best = i
		}
	}

	fmt.Fprintf(w, Bold+White+"%s"+Reset+DarkGray+" (%d bytes)"+Reset+"\n", title, len(data))
	for i, r := range results {
		color := White
		if i == best {
			color = LightGreen
		}
		fmt.Fprintf(w, DarkGray+" %-9s "+color+"%8d"+DarkGray+" symbols "+White+"%8d"+DarkGray+" UTF-8 bytes "+White+"%7.2f%%"+Reset+"\n",
			r.Encoder.Name(), r.Symbols, r.Bytes, r.Overhead)
	}
	if err != nil {
		fmt.Fprintf(w, LightRed+" %v"+Reset+"\n", err)
	}

	return err
}
