package model

import (
	"testing"
)

func TestGenerationFingerprintStable(t *testing.T) {
	p := NewProject("Job")
	pl := Placement{PM: [4]float64{-25, 177.5, 1832.5, 2040}}

	fp1 := GenerationFingerprint(p.Frame, p.Lock, pl)
	fp2 := GenerationFingerprint(p.Frame, p.Lock, pl)
	if fp1 != fp2 {
		t.Error("same inputs should fingerprint identically")
	}
	if len(fp1) != 64 {
		t.Errorf("expected hex sha256, got %d chars", len(fp1))
	}
}

func TestGenerationFingerprintChangesWithInputs(t *testing.T) {
	p := NewProject("Job")
	pl := Placement{PM: [4]float64{-25, 177.5, 1832.5, 2040}}

	before := GenerationFingerprint(p.Frame, pl)
	p.Frame.Height = 2101
	after := GenerationFingerprint(p.Frame, pl)
	if before == after {
		t.Error("changed frame should change the fingerprint")
	}
}

func TestShortFingerprint(t *testing.T) {
	if got := ShortFingerprint("abcdef0123456789"); got != "abcdef012345" {
		t.Errorf("expected 12-char prefix, got %q", got)
	}
	if got := ShortFingerprint("abc"); got != "abc" {
		t.Errorf("short input should pass through, got %q", got)
	}
}

func TestProgramStatus(t *testing.T) {
	g := GeneratedProgram{}
	if g.Status("anything") != NotGenerated {
		t.Error("empty fingerprint means not generated")
	}

	g.Fingerprint = "fp"
	if g.Status("fp") != InSync {
		t.Error("matching fingerprint means in sync")
	}
	if g.Status("other") != Stale {
		t.Error("mismatched fingerprint means stale")
	}
}

func TestSyncStatusString(t *testing.T) {
	if NotGenerated.String() != "not generated" {
		t.Errorf("unexpected: %s", NotGenerated)
	}
	if InSync.String() != "in sync" {
		t.Errorf("unexpected: %s", InSync)
	}
	if Stale.String() != "stale" {
		t.Errorf("unexpected: %s", Stale)
	}
}

func TestProgramFileName(t *testing.T) {
	tests := []struct {
		name     string
		project  string
		side     Side
		kind     ProgramKind
		expected string
	}{
		{"simple", "entrance", SideRight, ProgramFrame, "entrance_right_frame.nc"},
		{"spaces and case", "Front Door 7", SideLeft, ProgramLock, "front_door_7_left_lock.nc"},
		{"special chars collapse", "a//b  c", SideRight, ProgramHinge, "a_b_c_right_hinge.nc"},
		{"empty falls back", "", SideLeft, ProgramFrame, "frame_left_frame.nc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgramFileName(tt.project, tt.side, tt.kind)
			if got != tt.expected {
				t.Errorf("ProgramFileName(%q) = %q, want %q", tt.project, got, tt.expected)
			}
		})
	}
}
