package http

import (
	"context"
	"net/http"
	"time"
)

// Server envuelve el http.Server con timeouts de la config.
type Server struct {
	srv *http.Server
}

func NewServer(addr string, handler http.Handler, readTimeout, writeTimeout time.Duration) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
	}
}

func (s *Server) ListenAndServe() error { return s.srv.ListenAndServe() }

// Shutdown drena conexiones activas hasta que el contexto expire.
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
