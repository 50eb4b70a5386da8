package gcode

import (
	"testing"
)

func TestParse_Empty(t *testing.T) {
	moves := Parse("")
	if len(moves) != 0 {
		t.Errorf("expected 0 moves for empty input, got %d", len(moves))
	}
}

func TestParse_CommentsOnly(t *testing.T) {
	code := `; header comment
(FRAME RIGHT H=2100 W=88)
; another comment
`
	moves := Parse(code)
	if len(moves) != 0 {
		t.Errorf("expected 0 moves for comments-only input, got %d", len(moves))
	}
}

func TestParse_RapidMove(t *testing.T) {
	code := "G0 X-25.000 Y68.000\n"
	moves := Parse(code)
	if len(moves) != 1 {
		t.Fatalf("expected 1 move, got %d", len(moves))
	}
	m := moves[0]
	if m.Type != MoveRapid {
		t.Errorf("expected MoveRapid, got %s", m.Type)
	}
	if m.ToX != -25 || m.ToY != 68 {
		t.Errorf("expected to (-25,68), got (%.3f, %.3f)", m.ToX, m.ToY)
	}
}

func TestParse_DrillCycle(t *testing.T) {
	code := `G0 X177.5 Y0
G81 Z-12 R2 F300
G0 X1832.5
`
	moves := Parse(code)
	if len(moves) != 3 {
		t.Fatalf("expected 3 moves, got %d", len(moves))
	}

	d := moves[1]
	if d.Type != MoveDrill {
		t.Errorf("expected MoveDrill, got %s", d.Type)
	}
	if d.ToX != 177.5 || d.ToY != 0 || d.ToZ != -12 {
		t.Errorf("drill should happen at current XY to depth: (%.1f, %.1f, %.1f)", d.ToX, d.ToY, d.ToZ)
	}
	if d.FeedRate != 300 {
		t.Errorf("expected drill feed 300, got %.1f", d.FeedRate)
	}

	// After the cycle the tool sits at the R plane
	if moves[2].FromZ != 2 {
		t.Errorf("expected Z at R plane 2 after drill, got %.3f", moves[2].FromZ)
	}
}

func TestParse_PlungeAndRetract(t *testing.T) {
	code := `G0 X1050 Y68
G0 Z5
G1 Z-14 F250
G0 Z5
`
	moves := Parse(code)
	if len(moves) != 4 {
		t.Fatalf("expected 4 moves, got %d", len(moves))
	}
	if moves[2].Type != MovePlunge {
		t.Errorf("expected MovePlunge, got %s", moves[2].Type)
	}
	if moves[3].Type != MoveRetract {
		t.Errorf("expected MoveRetract, got %s", moves[3].Type)
	}
}

func TestParse_StateTracking(t *testing.T) {
	code := `G0 X150.000 Y68.000
G0 Z5.000
G1 Z-14.000 F250.0
G1 X230.000 Y68.000 F600.0
G0 Z5.000
`
	moves := Parse(code)
	if len(moves) != 5 {
		t.Fatalf("expected 5 moves, got %d", len(moves))
	}
	// Plunge happens at the hinge position reached by the first rapid
	if moves[2].FromX != 150 || moves[2].FromY != 68 {
		t.Errorf("move 2: expected from (150,68), got (%.3f, %.3f)", moves[2].FromX, moves[2].FromY)
	}
	// Feed cuts the pocket from 150 to 230
	if moves[3].FromX != 150 || moves[3].ToX != 230 {
		t.Errorf("move 3: expected X from 150 to 230, got %.3f to %.3f", moves[3].FromX, moves[3].ToX)
	}
}

func TestParse_FeedRateSticky(t *testing.T) {
	code := `G1 X10.000 Y10.000 F600.0
G1 X20.000 Y20.000
`
	moves := Parse(code)
	if len(moves) != 2 {
		t.Fatalf("expected 2 moves, got %d", len(moves))
	}
	if moves[1].FeedRate != 600 {
		t.Errorf("expected sticky feed rate 600, got %.1f", moves[1].FeedRate)
	}
}

func TestParse_NonMovementLines(t *testing.T) {
	code := `G21
G90
G54
M3 S12000
G0 X-25.000 Y0.000
G80
M5
M2
`
	moves := Parse(code)
	if len(moves) != 1 {
		t.Errorf("expected 1 move (only the rapid), got %d", len(moves))
	}
}

func TestParse_InlineComment(t *testing.T) {
	code := "G1 X50.000 Y50.000 F600.0 ; hinge pocket\n"
	moves := Parse(code)
	if len(moves) != 1 {
		t.Fatalf("expected 1 move, got %d", len(moves))
	}
	if moves[0].ToX != 50 || moves[0].ToY != 50 {
		t.Errorf("expected to (50,50), got (%.3f, %.3f)", moves[0].ToX, moves[0].ToY)
	}
}

func TestParse_FrameDrillSequence(t *testing.T) {
	// Shape of a rendered frame program: four drill positions, a rapid
	// between each, lock and hinge positioning at the end
	code := `(FRAME RIGHT H=2100 W=88)
G21
G90
G54
G0 Z50
G0 X-25 Y0
G81 Z-12 R2 F300
G0 X177.5
G81 Z-12 R2 F300
G0 X1832.5
G81 Z-12 R2 F300
G0 X2040
G81 Z-12 R2 F300
G80
G0 X1050 Y68
G0 Z50
M5
M2
`
	moves := Parse(code)

	counts := map[MoveType]int{}
	for _, m := range moves {
		counts[m.Type]++
	}
	if counts[MoveDrill] != 4 {
		t.Errorf("expected 4 drill cycles, got %d", counts[MoveDrill])
	}
	if counts[MoveRapid] < 5 {
		t.Errorf("expected at least 5 rapids, got %d", counts[MoveRapid])
	}

	s := Summarize(moves)
	if s.Drills != 4 {
		t.Errorf("stats should count 4 drills, got %d", s.Drills)
	}
	if s.MinX != -25 || s.MaxX != 2040 {
		t.Errorf("expected X extents -25..2040, got %.1f..%.1f", s.MinX, s.MaxX)
	}
	if s.MinZ != -12 {
		t.Errorf("expected drill depth in Z extents, got %.1f", s.MinZ)
	}
}

func TestClassifyMove(t *testing.T) {
	tests := []struct {
		name    string
		isRapid bool
		fromZ   float64
		toZ     float64
		fromX   float64
		fromY   float64
		toX     float64
		toY     float64
		want    MoveType
	}{
		{"rapid XY", true, 5, 5, 0, 0, 10, 20, MoveRapid},
		{"rapid retract", true, -6, 5, 10, 20, 10, 20, MoveRetract},
		{"feed XY", false, -6, -6, 0, 0, 100, 0, MoveFeed},
		{"plunge", false, 5, -6, 10, 20, 10, 20, MovePlunge},
		{"retract feed", false, -6, 0, 10, 20, 10, 20, MoveRetract},
		{"feed with slight Z", false, -6, -6.0001, 0, 0, 100, 0, MoveFeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyMove(tt.isRapid, tt.fromZ, tt.toZ, tt.fromX, tt.fromY, tt.toX, tt.toY)
			if got != tt.want {
				t.Errorf("classifyMove() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStripComment(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"semicolon", "G0 X10 ; move", "G0 X10 "},
		{"parenthetical", "G0 (rapid) X10", "G0  X10"},
		{"unclosed paren drops rest", "G0 X10 (rapid", "G0 X10 "},
		{"plain", "G0 X10", "G0 X10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripComment(tt.line); got != tt.want {
				t.Errorf("stripComment(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
