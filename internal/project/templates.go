package project

import (
	"encoding/json"
	"os"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// SaveFrameTemplates writes the frame template store to a JSON file.
func SaveFrameTemplates(path string, templates model.FrameTemplates) error {
	return writeJSON(path, templates)
}

// LoadFrameTemplates reads the frame template store from a JSON file.
// A missing file yields the built-in templates; a file with one side
// left empty keeps the built-in text for that side.
func LoadFrameTemplates(path string) (model.FrameTemplates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultFrameTemplates(), nil
		}
		return model.FrameTemplates{}, err
	}

	var templates model.FrameTemplates
	if err := json.Unmarshal(data, &templates); err != nil {
		return model.FrameTemplates{}, err
	}

	defaults := model.DefaultFrameTemplates()
	if templates.Right == "" {
		templates.Right = defaults.Right
	}
	if templates.Left == "" {
		templates.Left = defaults.Left
	}
	return templates, nil
}
