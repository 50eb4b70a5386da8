package project

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store file names inside the data directory.
const (
	configFileName    = "config.json"
	machineFileName   = "machine.toml"
	typesFileName     = "types.json"
	profilesFileName  = "profiles.json"
	templatesFileName = "frame_templates.json"
	setsFileName      = "sets.json"
)

// DataDir returns the directory FrameWizard keeps its catalogs and
// configuration in. The platform config directory is preferred, with a
// dotted home directory as fallback.
func DataDir() (string, error) {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "framewizard"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".framewizard"), nil
}

// writeJSON marshals v with indentation and writes it to path, creating
// parent directories as needed.
func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
