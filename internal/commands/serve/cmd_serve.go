package serve

import (
	"github.com/bokysan/base128/internal/logging"
	"github.com/bokysan/base128/internal/server"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Command runs the HTTP / websocket transcoding service
type Command struct {
	Listen            []string `yaml:"listen"            short:"L" long:"listen"             env:"BASE128_LISTEN" env-delim:" " description:"Address to listen on. May be repeated." default:"127.0.0.1:8128"`
	Compact           bool     `yaml:"compact"                     long:"compact"            env:"BASE128_COMPACT"              description:"Encode with compact padding markers unless the request says otherwise"`
	MaxBodySize       int64    `yaml:"maxBodySize"                 long:"max-body-size"      env:"BASE128_MAX_BODY_SIZE"        description:"Maximum size of a request body or websocket message in bytes" default:"33554432"`
	EnableCompression bool     `yaml:"enableCompression"           long:"enable-compression" env:"BASE128_ENABLE_COMPRESSION"   description:"Negotiate websocket compression"`

	servers server.Servers
}

func NewCommand() *Command {
	return &Command{
		MaxBodySize: server.DefaultMaxBodySize,
	}
}

func (s *Command) String() string {
	return "Transcoding service"
}

func (s *Command) transcoder() *server.Transcoder {
	return &server.Transcoder{
		Compact:           s.Compact,
		MaxBodySize:       s.MaxBodySize,
		EnableCompression: s.EnableCompression,
	}
}

// Startup starts a server for every listen address. Servers which could be started are left running
// even if others fail; Shutdown stops them.
func (s *Command) Startup(interrupted <-chan os.Signal) error {
	if len(s.Listen) == 0 {
		return errors.Errorf("No listen address defined")
	}

	transcoder := s.transcoder()
	s.servers = make(server.Servers, 0, len(s.Listen))
	for _, address := range s.Listen {
		s.servers = append(s.servers, server.NewHttpServer(address, transcoder))
	}

	var errs error
	m := &sync.Mutex{}
	wg := &sync.WaitGroup{}
	wg.Add(len(s.servers))

	for _, srv := range s.servers {
		go func(srv server.Server) {
			defer wg.Done()
			select {
			case <-interrupted:
			default:
				if err := srv.Startup(); err != nil && err != http.ErrServerClosed {
					m.Lock()
					errs = multierror.Append(errs, err)
					m.Unlock()
				}
			}
		}(srv)
	}
	wg.Wait()

	return errs
}

func (s *Command) Shutdown() error {
	var errs error

	log.Infof("Graceful server shutdown...")
	for _, srv := range s.servers {
		log.Debugf("[Server] Shutting down %v", srv)
		if err := srv.Shutdown(); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not shutdown %v", srv))
		}
	}

	return errs
}

func (s *Command) Execute(args []string) error {
	logging.SetupLogging()

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	if err := s.Startup(interrupted); err != nil {
		if serr := s.Shutdown(); serr != nil {
			err = multierror.Append(err, serr)
		}
		return err
	}

	<-interrupted
	return s.Shutdown()
}
