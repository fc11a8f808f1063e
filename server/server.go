// Package server provides an HTTP REST server that stores Minnow programs,
// executes them, and provides access to the results of their runs.
package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dekarrin/minnow/server/api"
	"github.com/dekarrin/minnow/server/dao"
	"github.com/dekarrin/minnow/server/mins"
)

// MinnowServer is an HTTP REST server that provides Minnow program storage,
// execution, and associated resources. The zero-value of a MinnowServer
// should not be used directly; call New() to get one ready for use.
type MinnowServer struct {
	router http.Handler
	api    api.API
	db     dao.Store
}

// New creates a new MinnowServer from the given config. The config should
// already have had FillDefaults and Validate called on it.
func New(cfg Config) (MinnowServer, error) {
	db, err := cfg.DB.Connect()
	if err != nil {
		return MinnowServer{}, fmt.Errorf("connect DB: %w", err)
	}

	ms := MinnowServer{
		api: api.API{
			Backend:     mins.Service{DB: db},
			UnauthDelay: cfg.UnauthDelay(),
			Secret:      cfg.TokenSecret,
		},
		db: db,
	}

	ms.router = newRouter(ms.api)

	return ms, nil
}

// Backend returns the service layer that the server's API calls into. It can
// be used for direct programmatic access to the server backend.
func (ms MinnowServer) Backend() mins.Service {
	return ms.api.Backend
}

// ServeForever begins listening on the given address and port for HTTP REST
// client requests. If address is kept as "", it will default to "localhost".
// If port is less than 1, it will default to 8080.
//
// This function will block until the server is stopped, and only returns on
// an error.
func (ms MinnowServer) ServeForever(address string, port int) {
	if address == "" {
		address = "localhost"
	}
	if port < 1 {
		port = 8080
	}

	listenAddress := fmt.Sprintf("%s:%d", address, port)
	log.Printf("INFO  Listening on %s", listenAddress)
	log.Fatalf("FATAL %v", http.ListenAndServe(listenAddress, ms.router))
}

// Close releases any resources held by the server, including its connection
// to persistence.
func (ms MinnowServer) Close() error {
	return ms.db.Close()
}
