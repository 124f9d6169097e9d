// Package server owns the HTTP server lifecycle around the gin engine.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pearlatelier/pearlsite-go/internal/application/container"
	"github.com/pearlatelier/pearlsite-go/internal/presentation/http/routes"
	"github.com/pearlatelier/pearlsite-go/pkg/config"
)

// Server wraps the configured http.Server.
type Server struct {
	httpServer *http.Server
}

// New builds the gin engine, registers all routes and returns a server
// ready to start.
func New(deps *container.Container) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	routes.Setup(router, deps)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", config.Port),
			Handler:      router,
			ReadTimeout:  config.ServerReadTimeout,
			WriteTimeout: config.ServerWriteTimeout,
			IdleTimeout:  config.ServerIdleTimeout,
		},
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start blocks serving requests until Shutdown or a listener error.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
