package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/FrameWizard/internal/model"
)

func TestLoadMachineSetupNonExistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.toml")

	m, err := LoadMachineSetup(path)
	if err != nil {
		t.Fatalf("expected no error for nonexistent file, got: %v", err)
	}
	if m.Controller != "Generic" {
		t.Errorf("expected Generic controller, got %s", m.Controller)
	}
	if m.Travel.MaxX != 3200 {
		t.Errorf("expected default travel, got MaxX=%.1f", m.Travel.MaxX)
	}
	if m.Geometry.PM[0].Width != 265 {
		t.Errorf("expected default geometry, got PM1 width %.1f", m.Geometry.PM[0].Width)
	}
}

func TestSaveAndLoadMachineSetup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.toml")

	m := model.DefaultMachineSetup()
	m.Controller = "Sinumerik"
	m.Offsets.Z = 60
	m.Travel.MaxX = 3600
	m.Geometry.PM[3].Height = 130

	if err := SaveMachineSetup(path, m); err != nil {
		t.Fatalf("SaveMachineSetup: %v", err)
	}

	loaded, err := LoadMachineSetup(path)
	if err != nil {
		t.Fatalf("LoadMachineSetup: %v", err)
	}
	if loaded.Controller != "Sinumerik" {
		t.Errorf("expected Sinumerik, got %s", loaded.Controller)
	}
	if loaded.Offsets.Z != 60 {
		t.Errorf("expected Z offset 60, got %.1f", loaded.Offsets.Z)
	}
	if loaded.Travel.MaxX != 3600 {
		t.Errorf("expected MaxX 3600, got %.1f", loaded.Travel.MaxX)
	}
	if loaded.Geometry.PM[3].Height != 130 {
		t.Errorf("expected PM4 height 130, got %.1f", loaded.Geometry.PM[3].Height)
	}
	// Untouched values survive the round trip
	if loaded.Travel.MinX != -100 {
		t.Errorf("expected MinX -100, got %.1f", loaded.Travel.MinX)
	}
	if loaded.Geometry.ComponentSafety != 170 {
		t.Errorf("expected component safety 170, got %.1f", loaded.Geometry.ComponentSafety)
	}
}

func TestLoadMachineSetupPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.toml")

	data := []byte("controller = \"Fanuc\"\n\n[travel]\nmax_x = 3600.0\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadMachineSetup(path)
	if err != nil {
		t.Fatalf("LoadMachineSetup: %v", err)
	}
	if m.Controller != "Fanuc" {
		t.Errorf("expected Fanuc, got %s", m.Controller)
	}
	if m.Travel.MaxX != 3600 {
		t.Errorf("expected MaxX 3600, got %.1f", m.Travel.MaxX)
	}
	// Keys the file does not set keep their defaults
	if m.Travel.MinX != -100 {
		t.Errorf("expected default MinX -100, got %.1f", m.Travel.MinX)
	}
	if m.Offsets.Z != 50 {
		t.Errorf("expected default Z offset 50, got %.1f", m.Offsets.Z)
	}
	if m.Geometry.LockPosition != 1050 {
		t.Errorf("expected default lock position 1050, got %.1f", m.Geometry.LockPosition)
	}
}

func TestLoadMachineSetupInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("controller = [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadMachineSetup(path); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}
