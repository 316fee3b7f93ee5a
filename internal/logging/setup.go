package logging

import (
	"github.com/bokysan/base128/internal/args"
	"github.com/bokysan/base128/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"strings"
)

// SetupLogging configures logrus from the general options. It is called by every command before doing any work.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	if args.General.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		})
	} else {
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   ForceColors(),
			DisableColors: NoColors(),
			FullTimestamp: args.General.LogFullTimestamp,
		})
	}

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			util.MustErrorNilOrExit(errors.WithStack(err))
		}
		log.SetOutput(f)
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
}

func logColor() string {
	return strings.TrimSpace(strings.ToLower(args.General.LogColor))
}

// ForceColors is true if colors were explicitly requested
func ForceColors() bool {
	color := logColor()
	return color == "yes" || color == "true" || color == "1"
}

// NoColors is true if colors were explicitly disabled
func NoColors() bool {
	color := logColor()
	return color == "no" || color == "false" || color == "0"
}
