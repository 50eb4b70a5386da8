package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/FrameWizard/internal/model"
)

func testWorkspace(t *testing.T) *Workspace {
	t.Helper()
	w, err := LoadWorkspace(t.TempDir())
	if err != nil {
		t.Fatalf("LoadWorkspace: %v", err)
	}
	return w
}

func TestExportAndImportAllData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	w := testWorkspace(t)
	w.Config.DefaultFrameHeight = 2200
	w.Machine.Controller = "Fanuc"
	if err := w.Types.Add(model.NewComponentType("Pocket 89", model.KindHinge, "G1 Z-{L1}\n")); err != nil {
		t.Fatal(err)
	}

	if err := ExportAllData(path, w); err != nil {
		t.Fatalf("ExportAllData: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData: %v", err)
	}
	if backup.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if backup.Config.DefaultFrameHeight != 2200 {
		t.Errorf("expected DefaultFrameHeight=2200, got %.1f", backup.Config.DefaultFrameHeight)
	}
	if backup.Machine.Controller != "Fanuc" {
		t.Errorf("expected Fanuc controller, got %s", backup.Machine.Controller)
	}
	if len(backup.Types.Types) != 1 || backup.Types.Types[0].Name != "Pocket 89" {
		t.Errorf("type catalog not preserved: %+v", backup.Types.Types)
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	if _, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportAllDataInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noversion.json")
	if err := os.WriteFile(path, []byte(`{"config":{}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestBackupApply(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	src := testWorkspace(t)
	src.Machine.Controller = "Sinumerik"
	if err := src.Profiles.Add(model.NewComponentProfile("Euro 72", model.KindLock, "Mortise 72")); err != nil {
		t.Fatal(err)
	}
	if err := ExportAllData(path, src); err != nil {
		t.Fatal(err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatal(err)
	}

	dst := testWorkspace(t)
	backup.Apply(dst)
	if dst.Machine.Controller != "Sinumerik" {
		t.Errorf("expected Sinumerik after apply, got %s", dst.Machine.Controller)
	}
	if dst.Profiles.FindByName(model.KindLock, "Euro 72") == nil {
		t.Error("expected imported lock profile after apply")
	}
}
