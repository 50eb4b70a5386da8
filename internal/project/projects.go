package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// SaveProject writes a project file, rotating numbered backups of any
// previous version first. With backups <= 0 the old file is simply
// overwritten.
func SaveProject(path string, p model.Project, backups int) error {
	if err := rotateBackups(path, backups); err != nil {
		return err
	}
	return writeJSON(path, p)
}

// LoadProject reads a project file. The frame height is clamped into
// the machinable range, matching what the editor does with typed input.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, err
	}

	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, err
	}
	if p.Name == "" {
		return model.Project{}, errors.New("project file has no name")
	}
	p.Frame.Height = model.ClampHeight(p.Frame.Height)
	return p, nil
}

// rotateBackups shifts path.bak1..bakN-1 up one slot and moves the
// current file to path.bak1. The oldest backup drops off the end.
func rotateBackups(path string, count int) error {
	if count <= 0 {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for i := count; i >= 2; i-- {
		src := backupName(path, i-1)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := os.Rename(src, backupName(path, i)); err != nil {
			return err
		}
	}
	return os.Rename(path, backupName(path, 1))
}

func backupName(path string, n int) string {
	return fmt.Sprintf("%s.bak%d", path, n)
}
