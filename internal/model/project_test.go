package model

import (
	"testing"
)

func TestNewProjectDefaults(t *testing.T) {
	p := NewProject("Entrance")

	if p.Name != "Entrance" {
		t.Errorf("expected name Entrance, got %q", p.Name)
	}
	if p.Frame.Height != 2100 || p.Frame.Width != 88 || p.Frame.DoorWidth != 40 {
		t.Errorf("unexpected frame defaults: %+v", p.Frame)
	}
	if !p.Lock.Active || p.Lock.Position != 1050 || p.Lock.Order != 1 {
		t.Errorf("unexpected lock defaults: %+v", p.Lock)
	}
	if p.Orientation != SideRight {
		t.Errorf("expected right orientation, got %s", p.Orientation)
	}
	if p.HingeCount() != 0 {
		t.Errorf("new project should have no active hinges, got %d", p.HingeCount())
	}
	if p.PM1Position != -25 {
		t.Errorf("expected PM1 anchor -25, got %v", p.PM1Position)
	}
	if p.LockYOffset != 68 || p.HingeYOffset != 68 {
		t.Errorf("Y offsets should derive from the frame: %v %v", p.LockYOffset, p.HingeYOffset)
	}
}

func TestSetHingeCount(t *testing.T) {
	p := NewProject("Job")

	p.SetHingeCount(3)
	if p.HingeCount() != 3 {
		t.Fatalf("expected 3 active hinges, got %d", p.HingeCount())
	}
	if p.Hinges[3].Active {
		t.Error("fourth slot should stay inactive")
	}
	if p.Hinges[0].Order != 1 || p.Hinges[2].Order != 3 {
		t.Errorf("active slots should get default orders: %+v", p.Hinges)
	}

	// Shrinking keeps positions on the remaining slots
	p.Hinges[0].Position = 150
	p.SetHingeCount(1)
	if p.HingeCount() != 1 {
		t.Fatalf("expected 1 active hinge, got %d", p.HingeCount())
	}
	if p.Hinges[0].Position != 150 {
		t.Error("shrinking the count should not clear positions")
	}
}

func TestObstaclesOnlyFromActivePlacedComponents(t *testing.T) {
	p := NewProject("Job")
	p.SetHingeCount(2)
	p.Hinges[0].Position = 150
	p.Hinges[1].Position = 0 // active but not placed yet

	obs := p.Obstacles(170)
	if len(obs) != 2 {
		t.Fatalf("expected lock + one placed hinge, got %d obstacles", len(obs))
	}
	if obs[0].Label != "Lock" || obs[0].Center != 1050 {
		t.Errorf("unexpected first obstacle: %+v", obs[0])
	}
	if obs[1].Label != "Hinge 1" || obs[1].Center != 150 || obs[1].Safety != 170 {
		t.Errorf("unexpected second obstacle: %+v", obs[1])
	}

	// Deactivating the lock removes its zone
	p.Lock.Active = false
	obs = p.Obstacles(170)
	if len(obs) != 1 || obs[0].Label != "Hinge 1" {
		t.Errorf("inactive lock should contribute nothing: %+v", obs)
	}
}

func TestStoreProgramsReplacesMatchingSideAndKind(t *testing.T) {
	p := NewProject("Job")

	first := NewGeneratedProgram(ProgramFrame, SideRight, "job_right_frame.nc", "G0 X1", "fp1")
	p.StorePrograms([]GeneratedProgram{first})
	if len(p.Programs) != 1 {
		t.Fatalf("expected 1 stored program, got %d", len(p.Programs))
	}

	second := NewGeneratedProgram(ProgramFrame, SideRight, "job_right_frame.nc", "G0 X2", "fp2")
	left := NewGeneratedProgram(ProgramFrame, SideLeft, "job_left_frame.nc", "G0 X3", "fp3")
	p.StorePrograms([]GeneratedProgram{second, left})

	if len(p.Programs) != 2 {
		t.Fatalf("expected replacement plus append, got %d programs", len(p.Programs))
	}
	stored := p.FindProgram(SideRight, ProgramFrame)
	if stored == nil || stored.Fingerprint != "fp2" {
		t.Errorf("right frame program should be replaced: %+v", stored)
	}
	if p.FindProgram(SideLeft, ProgramFrame) == nil {
		t.Error("left frame program should be stored")
	}
}

func TestProfileSetCaptureAndApply(t *testing.T) {
	src := NewProject("Source")
	src.SetHingeCount(3)
	src.SelectedHinge = "AXA Standard"
	src.SelectedLock = "Litto 55"
	src.Orientation = SideLeft

	set := NewProfileSet("Rental standard", "standard rental doors", &src)
	if set.HingeCount != 3 || set.SelectedHinge != "AXA Standard" {
		t.Errorf("set did not capture selections: %+v", set)
	}

	dst := NewProject("Target")
	set.ApplyTo(&dst)
	if dst.SelectedHinge != "AXA Standard" || dst.SelectedLock != "Litto 55" {
		t.Errorf("apply did not copy selections: %+v", dst)
	}
	if dst.HingeCount() != 3 {
		t.Errorf("apply should activate 3 hinges, got %d", dst.HingeCount())
	}
	if dst.Orientation != SideLeft {
		t.Errorf("apply should copy orientation, got %s", dst.Orientation)
	}
}

func TestSetStoreAddRejectsDuplicateName(t *testing.T) {
	ss := NewSetStore()
	p := NewProject("Job")

	if err := ss.Add(NewProfileSet("Rental", "", &p)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ss.Add(NewProfileSet("Rental", "", &p)); err == nil {
		t.Fatal("expected error for duplicate set name")
	}
}

func TestSetStoreRemoveByID(t *testing.T) {
	ss := NewSetStore()
	p := NewProject("Job")
	set := NewProfileSet("Rental", "", &p)
	_ = ss.Add(set)

	if ss.FindByID(set.ID) == nil {
		t.Fatal("expected to find the set by ID")
	}
	if !ss.Remove(set.ID) {
		t.Fatal("expected removal to succeed")
	}
	if ss.FindByName("Rental") != nil {
		t.Error("removed set should not be findable")
	}
	if ss.Remove(set.ID) {
		t.Error("second removal should report not found")
	}
}

func TestDefaultAppConfigMatchesProjectDefaults(t *testing.T) {
	c := DefaultAppConfig()
	p := NewProject("")

	if c.DefaultFrameHeight != p.Frame.Height {
		t.Errorf("config height %v should match project default %v", c.DefaultFrameHeight, p.Frame.Height)
	}
	if c.DefaultMachineProfile != "Generic" {
		t.Errorf("expected Generic machine profile, got %s", c.DefaultMachineProfile)
	}
	if c.DefaultHingeCount != 3 {
		t.Errorf("expected 3 default hinges, got %d", c.DefaultHingeCount)
	}
}

func TestApplyToProject(t *testing.T) {
	c := DefaultAppConfig()
	c.DefaultFrameHeight = 2400
	c.DefaultHingeCount = 4
	c.DefaultOrientation = SideLeft

	p := NewProject("Job")
	c.ApplyToProject(&p)

	if p.Frame.Height != 2400 {
		t.Errorf("expected height 2400, got %v", p.Frame.Height)
	}
	if p.HingeCount() != 4 {
		t.Errorf("expected 4 hinges, got %d", p.HingeCount())
	}
	if p.Orientation != SideLeft {
		t.Errorf("expected left orientation, got %s", p.Orientation)
	}
}

func TestAddRecentProjectDeduplicatesAndCaps(t *testing.T) {
	c := DefaultAppConfig()

	c.AddRecentProject("/jobs/a.json")
	c.AddRecentProject("/jobs/b.json")
	c.AddRecentProject("/jobs/a.json")

	if len(c.RecentProjects) != 2 {
		t.Fatalf("expected 2 recents, got %d", len(c.RecentProjects))
	}
	if c.RecentProjects[0] != "/jobs/a.json" {
		t.Errorf("re-added project should move to front: %v", c.RecentProjects)
	}

	for i := 0; i < 15; i++ {
		c.AddRecentProject(string(rune('a'+i)) + ".json")
	}
	if len(c.RecentProjects) != 10 {
		t.Errorf("recents should cap at 10, got %d", len(c.RecentProjects))
	}
}
