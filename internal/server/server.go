package server

import (
	"fmt"
)

// Server is a listening service which may be started and gracefully stopped
type Server interface {
	fmt.Stringer

	Startup() error
	Shutdown() error
}

type Servers []Server
