// Package server exposes the placement solver and the program generator
// as a JSON HTTP API over one loaded workspace.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/piwi3910/FrameWizard/internal/placement"
	"github.com/piwi3910/FrameWizard/internal/project"
)

// Server answers solve, validate and generate requests against the
// workspace it was built from. The workspace is read once at startup
// and shared read-only across requests.
type Server struct {
	ws     *project.Workspace
	solver *placement.Solver
}

// New creates a server over the loaded workspace.
func New(ws *project.Workspace) *Server {
	return &Server{
		ws:     ws,
		solver: placement.New(ws.Machine.Geometry),
	}
}

// Router builds the gin engine with all API routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	api.GET("/machine", s.handleMachine)
	api.POST("/solve", s.handleSolve)
	api.POST("/validate", s.handleValidate)
	api.POST("/hinges", s.handleHinges)
	api.POST("/generate", s.handleGenerate)

	return r
}

// Run serves the API on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}
