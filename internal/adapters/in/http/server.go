// Package http exposes the client's local status endpoints: a liveness
// probe and a snapshot of the running order session.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
)

// SessionSnapshot is the read-side the status endpoint needs from the
// session controller.
type SessionSnapshot interface {
	State() session.State
	OrderNumber() string
}

// Server serves the status endpoints over echo.
type Server struct {
	snapshot SessionSnapshot
}

// NewServer creates a status server over the given session snapshot.
func NewServer(snapshot SessionSnapshot) *Server {
	return &Server{snapshot: snapshot}
}

// Register mounts the routes on an echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/session", s.GetSession)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// sessionDTO is the GET /session response body.
type sessionDTO struct {
	State       string `json:"state"`
	OrderNumber string `json:"orderNumber,omitempty"`
}

// GetSession handles GET /session - the current lifecycle snapshot.
func (s *Server) GetSession(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, sessionDTO{
		State:       s.snapshot.State().String(),
		OrderNumber: s.snapshot.OrderNumber(),
	})
}
