package model

import "fmt"

// Side represents the door handing a program set is generated for.
type Side string

const (
	SideRight Side = "right"
	SideLeft  Side = "left"
)

// Sides lists both handings in generation order.
var Sides = []Side{SideRight, SideLeft}

// Opposite returns the other handing.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Frame height limits in mm. Heights outside this window cannot be
// machined on the frame center.
const (
	MinFrameHeight = 840.0
	MaxFrameHeight = 2500.0
)

// Frame represents the door frame blank being machined.
type Frame struct {
	Height    float64 `json:"height"`     // mm, along the upright
	Width     float64 `json:"width"`      // mm, across the profile
	DoorWidth float64 `json:"door_width"` // mm, door leaf thickness
}

// ClampHeight clamps a frame height into the machinable window.
func ClampHeight(h float64) float64 {
	if h < MinFrameHeight {
		return MinFrameHeight
	}
	if h > MaxFrameHeight {
		return MaxFrameHeight
	}
	return h
}

// AutoYOffset derives the Y position of lock and hinge pockets from the
// frame profile. Thin doors center the pocket on the leaf, thicker ones
// use a fixed 22.5mm inset from the outer edge.
func (f Frame) AutoYOffset() float64 {
	if f.DoorWidth <= 45 {
		return f.Width - f.DoorWidth/2
	}
	return f.Width - 22.5
}

// Obstacle is an excluded zone around an active lock or hinge position.
// No machining-point center may come within Safety of Center.
type Obstacle struct {
	Label  string  `json:"label"`
	Center float64 `json:"center"` // mm from frame top
	Safety float64 `json:"safety"` // half-width clearance in mm
}

// Interval returns the excluded interval covered by the obstacle.
func (o Obstacle) Interval() (start, end float64) {
	return o.Center - o.Safety, o.Center + o.Safety
}

// Range is a contiguous interval of the frame span not covered by any
// obstacle, large enough to host a machining point.
type Range struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Size returns the range length.
func (r Range) Size() float64 {
	return r.End - r.Start
}

// Contains reports whether pos lies within the range (inclusive).
func (r Range) Contains(pos float64) bool {
	return pos >= r.Start && pos <= r.End
}

// PMGeometry holds the fixed tool-slot dimensions of one machining point.
// Width lies along the frame's long axis, Height across it.
type PMGeometry struct {
	Width  float64 `json:"width"`  // mm
	Height float64 `json:"height"` // mm
}

// Geometry bundles the machine-position geometry and the placement
// constraints of the frame center. Values can be overridden per machine
// through the machine configuration file.
type Geometry struct {
	PM [4]PMGeometry `json:"pm"` // PM1..PM4 slot dimensions

	ComponentSafety float64 `json:"component_safety"` // mm kept clear around locks and hinges
	MinRangeSize    float64 `json:"min_range_size"`   // mm, smallest usable free range
	PM1Anchor       float64 `json:"pm1_anchor"`       // mm, default PM1 center (above the top datum)
	LockPosition    float64 `json:"lock_position"`    // mm, default lock drop-in position
}

// DefaultGeometry returns the factory geometry of the frame center.
func DefaultGeometry() Geometry {
	return Geometry{
		PM: [4]PMGeometry{
			{Width: 265, Height: 140},
			{Width: 140, Height: 175},
			{Width: 175, Height: 240},
			{Width: 240, Height: 120},
		},
		ComponentSafety: 170,
		MinRangeSize:    120,
		PM1Anchor:       -25,
		LockPosition:    1050,
	}
}

// MinDistance returns the minimum center distance between machining
// points a and b (1-based): the sum of their half-widths.
func (g Geometry) MinDistance(a, b int) float64 {
	return (g.PM[a-1].Width + g.PM[b-1].Width) / 2
}

// TopMargin returns how far below the frame bottom edge PM4's center
// must stay: half of PM4's slot height.
func (g Geometry) TopMargin() float64 {
	return g.PM[3].Height / 2
}

// Placement holds the computed machining-point centers for one frame.
type Placement struct {
	PM       [4]float64 `json:"pm"`       // centers PM1..PM4, mm from frame top
	Ranges   []Range    `json:"ranges"`   // valid ranges the solver worked with
	Fallback bool       `json:"fallback"` // minimum-clearance fallback was used
}

// Position returns the center of machining point i (1-based).
func (p Placement) Position(i int) float64 {
	return p.PM[i-1]
}

// Lock describes the lock case machining on the frame.
type Lock struct {
	Position float64 `json:"position"` // mm from frame top, 0 = not set
	Active   bool    `json:"active"`
	Order    int     `json:"order"` // execution order, 1-based; 0 = excluded
}

// Hinge describes one hinge pocket machining on the frame.
type Hinge struct {
	Position float64 `json:"position"` // mm from frame top, 0 = not set
	Active   bool    `json:"active"`
	Order    int     `json:"order"` // execution order, 1-based; 0 = excluded
}

// ViolationKind classifies a placement validation failure.
type ViolationKind int

const (
	ViolationClearance ViolationKind = iota // two PMs closer than their minimum distance
	ViolationObstacle                       // PM inside an obstacle safety zone
	ViolationBoundary                       // PM4 beyond the frame bottom margin
)

func (k ViolationKind) String() string {
	switch k {
	case ViolationClearance:
		return "clearance"
	case ViolationObstacle:
		return "obstacle"
	default:
		return "boundary"
	}
}

// Violation records one placement constraint failure for display.
type Violation struct {
	Kind     ViolationKind `json:"kind"`
	PM       int           `json:"pm"`                 // 1-based machining point flagged
	Other    int           `json:"other,omitempty"`    // partner PM for clearance violations
	Obstacle string        `json:"obstacle,omitempty"` // obstacle label for obstacle violations
	Distance float64       `json:"distance"`           // measured distance in mm
	Required float64       `json:"required"`           // minimum required distance in mm
}

// Message produces a human-readable description of the violation.
func (v Violation) Message() string {
	switch v.Kind {
	case ViolationClearance:
		return fmt.Sprintf("PM%d and PM%d are %.1f mm apart, minimum is %.1f mm",
			v.PM, v.Other, v.Distance, v.Required)
	case ViolationObstacle:
		return fmt.Sprintf("PM%d is %.1f mm from %s, minimum is %.1f mm",
			v.PM, v.Distance, v.Obstacle, v.Required)
	default:
		return fmt.Sprintf("PM%d at %.1f mm exceeds the frame limit of %.1f mm",
			v.PM, v.Distance, v.Required)
	}
}

// ValidationResult holds the outcome of checking a placement against the
// frame and its obstacles. PMErrors flags each machining point
// independently so a caller can highlight exactly the offending ones.
type ValidationResult struct {
	PMErrors   [4]bool     `json:"pm_errors"`
	Violations []Violation `json:"violations"`
}

// OK reports whether the placement passed all checks.
func (v ValidationResult) OK() bool {
	return len(v.Violations) == 0
}
