// Package cmdio opens the inputs and outputs of the command line tools. A path of "-" stands for
// stdin or stdout.
package cmdio

import (
	"bufio"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

const Stdio = "-"

// Input is the concatenation of all input files
type Input struct {
	io.Reader
	files []*os.File
}

// OpenInputs opens all given files and chains them together. No paths (or "-") reads from stdin. If any
// of the files cannot be opened, all errors are reported at once.
func OpenInputs(paths []string) (*Input, error) {
	if len(paths) == 0 {
		paths = []string{Stdio}
	}

	var errs error
	in := &Input{}
	readers := make([]io.Reader, 0, len(paths))
	for _, p := range paths {
		if p == Stdio {
			readers = append(readers, os.Stdin)
			continue
		}
		f, err := os.Open(p)
		if err != nil {
			errs = multierror.Append(errs, errors.WithStack(err))
			continue
		}
		log.Debugf("Reading %v", p)
		in.files = append(in.files, f)
		readers = append(readers, f)
	}

	if errs != nil {
		_ = in.Close()
		return nil, errs
	}

	in.Reader = bufio.NewReader(io.MultiReader(readers...))
	return in, nil
}

// Close closes all opened files. Stdin is left open.
func (in *Input) Close() error {
	var errs error
	for _, f := range in.files {
		if err := f.Close(); err != nil {
			errs = multierror.Append(errs, errors.WithStack(err))
		}
	}
	in.files = nil
	return errs
}

// -------------------------------------------------------

// Output is a buffered output file or stdout
type Output struct {
	*bufio.Writer
	path string
	file *os.File
}

// CreateOutput creates (or truncates) the given file. "-" or an empty path writes to stdout.
func CreateOutput(path string) (*Output, error) {
	if path == "" || path == Stdio {
		return &Output{
			Writer: bufio.NewWriter(os.Stdout),
			path:   Stdio,
		}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	log.Debugf("Writing %v", path)
	return &Output{
		Writer: bufio.NewWriter(f),
		path:   path,
		file:   f,
	}, nil
}

// Close flushes the buffered data and closes the file. Stdout is flushed, but not closed.
func (o *Output) Close() error {
	err := errors.WithStack(o.Flush())
	if o.file != nil {
		if cerr := o.file.Close(); cerr != nil && err == nil {
			err = errors.WithStack(cerr)
		}
		o.file = nil
	}
	return err
}

// Discard throws the output away. A file is closed and removed, so no partial results are left behind.
// Data already written to stdout cannot be taken back, but buffered data is dropped.
func (o *Output) Discard() {
	o.Reset(io.Discard)
	if o.file == nil {
		return
	}
	if err := o.file.Close(); err != nil {
		log.WithError(err).Warnf("Could not close %v", o.path)
	}
	if err := os.Remove(o.path); err != nil {
		log.WithError(err).Warnf("Could not remove %v", o.path)
	}
	o.file = nil
}
