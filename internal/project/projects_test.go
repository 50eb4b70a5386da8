package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/FrameWizard/internal/model"
)

func TestSaveAndLoadProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entry-door.json")

	p := model.NewProject("Entry Door")
	p.SetHingeCount(3)
	p.Hinges[0].Position = 150
	p.SelectedHinge = "Standard 89"
	p.Overrides.Set("lock_y_offset", "70")

	if err := SaveProject(path, p, 0); err != nil {
		t.Fatalf("SaveProject: %v", err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if loaded.Name != "Entry Door" {
		t.Errorf("expected name Entry Door, got %s", loaded.Name)
	}
	if loaded.HingeCount() != 3 {
		t.Errorf("expected 3 hinges, got %d", loaded.HingeCount())
	}
	if loaded.Hinges[0].Position != 150 {
		t.Errorf("expected hinge 1 at 150, got %.1f", loaded.Hinges[0].Position)
	}
	if v, ok := loaded.Overrides.Get("lock_y_offset"); !ok || v != "70" {
		t.Errorf("override not preserved: %q %v", v, ok)
	}
}

func TestLoadProjectClampsHeight(t *testing.T) {
	dir := t.TempDir()

	low := filepath.Join(dir, "low.json")
	if err := os.WriteFile(low, []byte(`{"name":"Low","frame":{"height":100,"width":88,"door_width":40}}`), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadProject(low)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if p.Frame.Height != model.MinFrameHeight {
		t.Errorf("expected height clamped to %v, got %.1f", model.MinFrameHeight, p.Frame.Height)
	}

	high := filepath.Join(dir, "high.json")
	if err := os.WriteFile(high, []byte(`{"name":"High","frame":{"height":9999,"width":88,"door_width":40}}`), 0644); err != nil {
		t.Fatal(err)
	}
	p, err = LoadProject(high)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if p.Frame.Height != model.MaxFrameHeight {
		t.Errorf("expected height clamped to %v, got %.1f", model.MaxFrameHeight, p.Frame.Height)
	}
}

func TestLoadProjectNoName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noname.json")
	if err := os.WriteFile(path, []byte(`{"frame":{"height":2100}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadProject(path); err == nil {
		t.Fatal("expected error for project without name")
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	if _, err := LoadProject(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveProjectRotatesBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "door.json")

	p := model.NewProject("v1")
	if err := SaveProject(path, p, 2); err != nil {
		t.Fatalf("save v1: %v", err)
	}
	p.Name = "v2"
	if err := SaveProject(path, p, 2); err != nil {
		t.Fatalf("save v2: %v", err)
	}
	p.Name = "v3"
	if err := SaveProject(path, p, 2); err != nil {
		t.Fatalf("save v3: %v", err)
	}

	current, err := LoadProject(path)
	if err != nil {
		t.Fatal(err)
	}
	if current.Name != "v3" {
		t.Errorf("expected current v3, got %s", current.Name)
	}

	bak1, err := LoadProject(path + ".bak1")
	if err != nil {
		t.Fatal(err)
	}
	if bak1.Name != "v2" {
		t.Errorf("expected bak1 v2, got %s", bak1.Name)
	}

	bak2, err := LoadProject(path + ".bak2")
	if err != nil {
		t.Fatal(err)
	}
	if bak2.Name != "v1" {
		t.Errorf("expected bak2 v1, got %s", bak2.Name)
	}

	// A fourth save drops the oldest version
	p.Name = "v4"
	if err := SaveProject(path, p, 2); err != nil {
		t.Fatalf("save v4: %v", err)
	}
	bak2, err = LoadProject(path + ".bak2")
	if err != nil {
		t.Fatal(err)
	}
	if bak2.Name != "v2" {
		t.Errorf("expected bak2 v2 after rotation, got %s", bak2.Name)
	}
	if _, err := os.Stat(path + ".bak3"); !os.IsNotExist(err) {
		t.Error("no bak3 should exist with a backup count of 2")
	}
}

func TestSaveProjectNoBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "door.json")

	p := model.NewProject("v1")
	if err := SaveProject(path, p, 0); err != nil {
		t.Fatal(err)
	}
	p.Name = "v2"
	if err := SaveProject(path, p, 0); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path + ".bak1"); !os.IsNotExist(err) {
		t.Error("no backups should be written with a backup count of 0")
	}
}
