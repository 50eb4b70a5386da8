package project

import (
	"encoding/json"
	"os"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// SaveSets writes the profile set store to a JSON file.
func SaveSets(path string, store model.SetStore) error {
	return writeJSON(path, store)
}

// LoadSets reads the profile set store from a JSON file.
// Returns an empty store if the file does not exist.
func LoadSets(path string) (model.SetStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewSetStore(), nil
		}
		return model.SetStore{}, err
	}

	var store model.SetStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.SetStore{}, err
	}
	if store.Sets == nil {
		store.Sets = []model.ProfileSet{}
	}
	return store, nil
}
