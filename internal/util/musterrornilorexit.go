package util

import (
	"github.com/bokysan/base128/internal/base128"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrDataError is returned when the input could not be decoded (EX_DATAERR from sysexits.h)
	ErrDataError = 65
	// ErrGeneric is returned for any other error
	ErrGeneric = 99
)

// ExitCode maps an error to the process exit code. Error code is unwrapped from `flags.Error` object.
// Decoding errors map to ErrDataError. If it's a different kind of error, a generic error code - 99 - is returned.
func ExitCode(err error) int {
	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	}
	if errors.Is(err, base128.ErrInvalidSymbol) || errors.Is(err, base128.ErrBlockOverflow) {
		return ErrDataError
	}
	return ErrGeneric
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code from ExitCode.
// Requests for help exit with 0.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
