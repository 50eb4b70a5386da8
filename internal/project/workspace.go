package project

import (
	"fmt"
	"path/filepath"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// Workspace bundles every persisted store under one data directory, so
// commands can load everything in one step and write back only what
// they changed.
type Workspace struct {
	Dir       string
	Config    model.AppConfig
	Machine   model.MachineSetup
	Types     model.TypeStore
	Profiles  model.ProfileStore
	Templates model.FrameTemplates
	Sets      model.SetStore
}

// LoadWorkspace loads all stores from dir, or from the default data
// directory when dir is empty. Missing files load as their defaults, so
// a fresh installation works without any setup.
func LoadWorkspace(dir string) (*Workspace, error) {
	if dir == "" {
		d, err := DataDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	w := &Workspace{Dir: dir}
	var err error
	if w.Config, err = LoadAppConfig(filepath.Join(dir, configFileName)); err != nil {
		return nil, fmt.Errorf("load app config: %w", err)
	}
	if w.Machine, err = LoadMachineSetup(filepath.Join(dir, machineFileName)); err != nil {
		return nil, fmt.Errorf("load machine setup: %w", err)
	}
	if w.Types, err = LoadTypes(filepath.Join(dir, typesFileName)); err != nil {
		return nil, fmt.Errorf("load component types: %w", err)
	}
	if w.Profiles, err = LoadProfiles(filepath.Join(dir, profilesFileName)); err != nil {
		return nil, fmt.Errorf("load component profiles: %w", err)
	}
	if w.Templates, err = LoadFrameTemplates(filepath.Join(dir, templatesFileName)); err != nil {
		return nil, fmt.Errorf("load frame templates: %w", err)
	}
	if w.Sets, err = LoadSets(filepath.Join(dir, setsFileName)); err != nil {
		return nil, fmt.Errorf("load profile sets: %w", err)
	}
	return w, nil
}

// NewProject creates a project carrying the workspace's saved defaults.
func (w *Workspace) NewProject(name string) model.Project {
	p := model.NewProject(name)
	w.Config.ApplyToProject(&p)
	return p
}

// SaveConfig writes the app configuration back to the workspace.
func (w *Workspace) SaveConfig() error {
	return SaveAppConfig(filepath.Join(w.Dir, configFileName), w.Config)
}

// SaveMachine writes the machine setup back to the workspace.
func (w *Workspace) SaveMachine() error {
	return SaveMachineSetup(filepath.Join(w.Dir, machineFileName), w.Machine)
}

// SaveTypes writes the component type catalog back to the workspace.
func (w *Workspace) SaveTypes() error {
	return SaveTypes(filepath.Join(w.Dir, typesFileName), w.Types)
}

// SaveProfiles writes the component profile catalog back to the workspace.
func (w *Workspace) SaveProfiles() error {
	return SaveProfiles(filepath.Join(w.Dir, profilesFileName), w.Profiles)
}

// SaveTemplates writes the frame templates back to the workspace.
func (w *Workspace) SaveTemplates() error {
	return SaveFrameTemplates(filepath.Join(w.Dir, templatesFileName), w.Templates)
}

// SaveSets writes the profile set store back to the workspace.
func (w *Workspace) SaveSets() error {
	return SaveSets(filepath.Join(w.Dir, setsFileName), w.Sets)
}
