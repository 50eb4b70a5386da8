package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// BackupData is the top-level structure for one-file export and import
// of all application data: configuration, machine setup and catalogs.
type BackupData struct {
	Version   string               `json:"version"`
	CreatedAt string               `json:"created_at"`
	Config    model.AppConfig      `json:"config"`
	Machine   model.MachineSetup   `json:"machine"`
	Types     model.TypeStore      `json:"types"`
	Profiles  model.ProfileStore   `json:"profiles"`
	Templates model.FrameTemplates `json:"templates"`
	Sets      model.SetStore       `json:"sets"`
}

const backupVersion = "1.0.0"

// ExportAllData exports the whole workspace to a single JSON file at
// the specified path.
func ExportAllData(exportPath string, w *Workspace) error {
	backup := BackupData{
		Version:   backupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    w.Config,
		Machine:   w.Machine,
		Types:     w.Types,
		Profiles:  w.Profiles,
		Templates: w.Templates,
		Sets:      w.Sets,
	}
	if err := writeJSON(exportPath, backup); err != nil {
		return fmt.Errorf("write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup JSON file and returns the contained
// data. The caller decides whether to apply it.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	// Ensure slices and maps are never nil after import
	if backup.Config.RecentProjects == nil {
		backup.Config.RecentProjects = []string{}
	}
	if backup.Types.Types == nil {
		backup.Types.Types = []model.ComponentType{}
	}
	if backup.Profiles.Profiles == nil {
		backup.Profiles.Profiles = []model.ComponentProfile{}
	}
	if backup.Sets.Sets == nil {
		backup.Sets.Sets = []model.ProfileSet{}
	}
	return backup, nil
}

// Apply copies the backup's stores into a workspace. The workspace is
// not saved; callers write back the stores they want to keep.
func (b BackupData) Apply(w *Workspace) {
	w.Config = b.Config
	w.Machine = b.Machine
	w.Types = b.Types
	w.Profiles = b.Profiles
	w.Templates = b.Templates
	w.Sets = b.Sets
}
