package gcode

import (
	"regexp"
	"strconv"
	"strings"
)

// MoveType represents the type of machine movement.
type MoveType int

const (
	MoveRapid   MoveType = iota // G0: rapid positioning (no cutting)
	MoveFeed                    // G1: linear feed in the XY plane
	MovePlunge                  // G1 with Z decreasing: plunging into material
	MoveRetract                 // G0/G1 with Z increasing: retracting from material
	MoveDrill                   // G81: drill cycle at the current position
)

func (t MoveType) String() string {
	switch t {
	case MoveRapid:
		return "rapid"
	case MoveFeed:
		return "feed"
	case MovePlunge:
		return "plunge"
	case MoveRetract:
		return "retract"
	default:
		return "drill"
	}
}

// Move represents a single parsed movement from a program.
type Move struct {
	Type     MoveType
	FromX    float64
	FromY    float64
	FromZ    float64
	ToX      float64
	ToY      float64
	ToZ      float64
	FeedRate float64
}

var wordRe = regexp.MustCompile(`([XYZRF])([-]?\d+\.?\d*)`)

// Parse reads a program into structured moves. It tracks absolute
// position state, classifies each G0/G1 command by its movement
// characteristics and expands G81 drill cycles into a plunge to the
// drill depth followed by a retract to the R plane. Unsupported words
// are skipped.
func Parse(code string) []Move {
	var moves []Move

	// Current machine state
	curX, curY, curZ := 0.0, 0.0, 0.0
	curFeed := 0.0

	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(stripComment(line))
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		cmd := commandWord(upper)

		isRapid := cmd == "G0" || cmd == "G00"
		isFeed := cmd == "G1" || cmd == "G01"
		isDrill := cmd == "G81"
		if !isRapid && !isFeed && !isDrill {
			continue
		}

		// Parse words from this line
		newX, newY, newZ, newFeed := curX, curY, curZ, curFeed
		retractPlane := curZ
		for _, m := range wordRe.FindAllStringSubmatch(upper, -1) {
			val, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				continue
			}
			switch m[1] {
			case "X":
				newX = val
			case "Y":
				newY = val
			case "Z":
				newZ = val
			case "R":
				retractPlane = val
			case "F":
				newFeed = val
			}
		}

		if isDrill {
			// Drill at the current XY down to Z, then back to the R plane
			moves = append(moves, Move{
				Type:  MoveDrill,
				FromX: curX, FromY: curY, FromZ: curZ,
				ToX: curX, ToY: curY, ToZ: newZ,
				FeedRate: newFeed,
			})
			curZ, curFeed = retractPlane, newFeed
			continue
		}

		moveType := classifyMove(isRapid, curZ, newZ, curX, curY, newX, newY)
		moves = append(moves, Move{
			Type:  moveType,
			FromX: curX, FromY: curY, FromZ: curZ,
			ToX: newX, ToY: newY, ToZ: newZ,
			FeedRate: newFeed,
		})
		curX, curY, curZ, curFeed = newX, newY, newZ, newFeed
	}

	return moves
}

// stripComment removes semicolon and parenthetical comments from a line.
func stripComment(line string) string {
	if idx := strings.Index(line, ";"); idx >= 0 {
		line = line[:idx]
	}
	if idx := strings.Index(line, "("); idx >= 0 {
		if end := strings.Index(line, ")"); end > idx {
			line = line[:idx] + line[end+1:]
		} else {
			line = line[:idx]
		}
	}
	return line
}

// commandWord returns the leading word of a program line.
func commandWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// classifyMove determines the MoveType based on movement characteristics.
func classifyMove(isRapid bool, fromZ, toZ, fromX, fromY, toX, toY float64) MoveType {
	zDelta := toZ - fromZ
	hasXY := fromX != toX || fromY != toY

	switch {
	case isRapid:
		if zDelta > 0 {
			return MoveRetract
		}
		return MoveRapid
	case zDelta < -0.001 && !hasXY:
		return MovePlunge
	case zDelta > 0.001 && !hasXY:
		return MoveRetract
	default:
		return MoveFeed
	}
}

// Stats summarizes a parsed program for listings and travel checks.
type Stats struct {
	Moves  int `json:"moves"`
	Rapids int `json:"rapids"`
	Feeds  int `json:"feeds"`
	Drills int `json:"drills"`

	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
	MinZ float64 `json:"min_z"`
	MaxZ float64 `json:"max_z"`
}

// Summarize walks the moves and accumulates counts and reach extents.
// The extents cover every commanded endpoint including drill depths.
func Summarize(moves []Move) Stats {
	var s Stats
	s.Moves = len(moves)
	for i, m := range moves {
		switch m.Type {
		case MoveRapid, MoveRetract:
			s.Rapids++
		case MoveFeed, MovePlunge:
			s.Feeds++
		case MoveDrill:
			s.Drills++
		}

		if i == 0 {
			s.MinX, s.MaxX = m.ToX, m.ToX
			s.MinY, s.MaxY = m.ToY, m.ToY
			s.MinZ, s.MaxZ = m.ToZ, m.ToZ
			continue
		}
		s.MinX = min(s.MinX, m.ToX)
		s.MaxX = max(s.MaxX, m.ToX)
		s.MinY = min(s.MinY, m.ToY)
		s.MaxY = max(s.MaxY, m.ToY)
		s.MinZ = min(s.MinZ, m.ToZ)
		s.MaxZ = max(s.MaxZ, m.ToZ)
	}
	return s
}
