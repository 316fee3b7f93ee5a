package server

import (
	"context"
	"fmt"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net"
	"net/http"
	"time"
)

// ShutdownTimeout is how long Shutdown waits for requests in flight
const ShutdownTimeout = 5 * time.Second

// HttpServer exposes a Transcoder over HTTP
type HttpServer struct {
	Address    string
	Transcoder *Transcoder

	server   *http.Server
	listener net.Listener
}

func NewHttpServer(address string, transcoder *Transcoder) *HttpServer {
	return &HttpServer{
		Address:    address,
		Transcoder: transcoder,
	}
}

func (ws *HttpServer) String() string {
	if ws.listener != nil {
		return fmt.Sprintf("http://%s", ws.listener.Addr())
	}
	return fmt.Sprintf("http://%s", ws.Address)
}

// Router creates the routes of the service
func (ws *HttpServer) Router(address *net.TCPAddr) http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
		GetRequestLogger(address),
		middleware.RedirectSlashes, // Redirect slashes to no slash URLs
		middleware.Recoverer,       // Recover from panics without crashing the server
	)

	t := ws.Transcoder
	router.Post("/encode", t.Encode)
	router.Post("/decode", t.Decode)
	router.Get("/alphabet", t.Alphabet)
	router.Get("/ws", t.Websocket())

	return router
}

// Startup starts listening and serves requests in the background
func (ws *HttpServer) Startup() error {
	ln, err := net.Listen("tcp", ws.Address)
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", ws.Address)
	}
	ws.listener = ln

	address, _ := ln.Addr().(*net.TCPAddr)
	ws.server = &http.Server{
		Handler: ws.Router(address),
	}

	go func() {
		log.Infof("Starting HTTP server at %v", ws)
		if err := ws.server.Serve(ln); err != http.ErrServerClosed {
			err = errors.WithStack(err)
			log.WithError(err).Errorf("Could not start the server %v", err)
		}
	}()

	return nil
}

// Addr returns the address the server listens on, once started
func (ws *HttpServer) Addr() net.Addr {
	if ws.listener == nil {
		return nil
	}
	return ws.listener.Addr()
}

func (ws *HttpServer) Shutdown() error {
	if ws.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return errors.WithStack(ws.server.Shutdown(ctx))
}
