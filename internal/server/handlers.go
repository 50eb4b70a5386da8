package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piwi3910/FrameWizard/internal/gcode"
	"github.com/piwi3910/FrameWizard/internal/model"
	"github.com/piwi3910/FrameWizard/internal/placement"
)

// solveRequest asks for a machining point layout. PM1Position falls
// back to the catalog anchor when omitted.
type solveRequest struct {
	FrameHeight float64          `json:"frame_height"`
	PM1Position *float64         `json:"pm1_position"`
	Obstacles   []model.Obstacle `json:"obstacles"`
}

// validateRequest asks for a constraint check of an existing layout.
type validateRequest struct {
	FrameHeight float64          `json:"frame_height"`
	Placement   model.Placement  `json:"placement"`
	Obstacles   []model.Obstacle `json:"obstacles"`
}

// hingesRequest asks for auto-distributed hinge positions.
type hingesRequest struct {
	FrameHeight float64 `json:"frame_height"`
	Count       int     `json:"count"`
}

func (s *Server) handleMachine(c *gin.Context) {
	c.JSON(http.StatusOK, s.ws.Machine)
}

func (s *Server) handleSolve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	height := model.ClampHeight(req.FrameHeight)
	pm1 := s.ws.Machine.Geometry.PM1Anchor
	if req.PM1Position != nil {
		pm1 = *req.PM1Position
	}

	pl, solved := s.solver.Solve(height, pm1, req.Obstacles)
	c.JSON(http.StatusOK, gin.H{
		"frame_height": height,
		"placement":    pl,
		"solved":       solved,
		"validation":   s.solver.Validate(height, pl, req.Obstacles),
	})
}

func (s *Server) handleValidate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	height := model.ClampHeight(req.FrameHeight)
	c.JSON(http.StatusOK, s.solver.Validate(height, req.Placement, req.Obstacles))
}

func (s *Server) handleHinges(c *gin.Context) {
	var req hingesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Count < 0 || req.Count > 4 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("hinge count %d out of range 0..4", req.Count)})
		return
	}

	height := model.ClampHeight(req.FrameHeight)
	positions := placement.AutoHingePositions(height, req.Count)
	if positions == nil {
		positions = []float64{}
	}
	c.JSON(http.StatusOK, gin.H{"frame_height": height, "positions": positions})
}

// handleGenerate takes a full project document, solves the layout and
// renders the program set. The optional side query parameter narrows
// the output to one hand.
func (s *Server) handleGenerate(c *gin.Context) {
	var p model.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if p.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project has no name"})
		return
	}

	sides := model.Sides
	if side := c.Query("side"); side != "" {
		if side != string(model.SideRight) && side != string(model.SideLeft) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown side %q", side)})
			return
		}
		sides = []model.Side{model.Side(side)}
	}

	p.Frame.Height = model.ClampHeight(p.Frame.Height)
	if p.PM1Position == 0 {
		p.PM1Position = s.ws.Machine.Geometry.PM1Anchor
	}

	obstacles := p.Obstacles(s.ws.Machine.Geometry.ComponentSafety)
	pl, _ := s.solver.Solve(p.Frame.Height, p.PM1Position, obstacles)
	if result := s.solver.Validate(p.Frame.Height, pl, obstacles); !result.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "placement violates machining constraints",
			"validation": result,
		})
		return
	}

	gen := gcode.New(s.ws.Machine)
	programs, err := gen.GenerateAll(gcode.Inputs{
		Project:   &p,
		Placement: pl,
		Types:     &s.ws.Types,
		Profiles:  &s.ws.Profiles,
		Templates: s.ws.Templates,
	}, sides...)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	warnings := gcode.FormatTravelWarnings(gcode.CheckPrograms(programs, s.ws.Machine.Travel))
	if warnings == nil {
		warnings = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"placement": pl,
		"programs":  programs,
		"warnings":  warnings,
	})
}
