package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.pdf")

	if err := ExportPDF(path, buildTestJob()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// Three pages (elevation, summary, programs) should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_NoProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	if err := ExportPDF(path, Job{}); err == nil {
		t.Fatal("expected error for missing project, got nil")
	}
}

func TestExportPDF_WithViolations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "violations.pdf")

	if err := ExportPDF(path, buildViolatedJob()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestExportPDF_NoPrograms(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no_programs.pdf")

	job := buildTestJob()
	job.Programs = nil

	if err := ExportPDF(path, job); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
}

func TestExportPDF_FallbackLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fallback.pdf")

	job := buildTestJob()
	job.Placement.Fallback = true

	if err := ExportPDF(path, job); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
}

func TestExportPDF_NoLock(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no_lock.pdf")

	job := buildTestJob()
	job.Project.Lock.Active = false

	if err := ExportPDF(path, job); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
}

func TestMarkFontSize(t *testing.T) {
	tests := []struct {
		w    float64
		want float64
	}{
		{40, 8},
		{20, 7},
		{10, 6},
	}
	for _, tt := range tests {
		if got := markFontSize(tt.w); got != tt.want {
			t.Errorf("markFontSize(%v) = %v, want %v", tt.w, got, tt.want)
		}
	}
}
