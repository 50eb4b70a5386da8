package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// SaveTypes writes the component type catalog to a JSON file.
func SaveTypes(path string, store model.TypeStore) error {
	return writeJSON(path, store)
}

// LoadTypes reads the component type catalog from a JSON file.
// Returns an empty store if the file does not exist.
func LoadTypes(path string) (model.TypeStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewTypeStore(), nil
		}
		return model.TypeStore{}, err
	}

	var store model.TypeStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.TypeStore{}, err
	}
	if store.Types == nil {
		store.Types = []model.ComponentType{}
	}
	return store, nil
}

// SaveProfiles writes the component profile catalog to a JSON file.
func SaveProfiles(path string, store model.ProfileStore) error {
	return writeJSON(path, store)
}

// LoadProfiles reads the component profile catalog from a JSON file.
// Returns an empty store if the file does not exist.
func LoadProfiles(path string) (model.ProfileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewProfileStore(), nil
		}
		return model.ProfileStore{}, err
	}

	var store model.ProfileStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.ProfileStore{}, err
	}
	if store.Profiles == nil {
		store.Profiles = []model.ComponentProfile{}
	}
	for i := range store.Profiles {
		if store.Profiles[i].LVars == nil {
			store.Profiles[i].LVars = map[string]string{}
		}
		if store.Profiles[i].CustomVars == nil {
			store.Profiles[i].CustomVars = map[string]string{}
		}
	}
	return store, nil
}

// ProfileBundle pairs a profile with the type it references, so one
// exported file carries everything needed to use the profile in a
// workspace that has neither.
type ProfileBundle struct {
	Type    model.ComponentType    `json:"type"`
	Profile model.ComponentProfile `json:"profile"`
}

// ExportProfileBundle writes a profile and its type to a JSON file
// (for sharing).
func ExportProfileBundle(path string, b ProfileBundle) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportProfileBundle reads a profile bundle. Entries without an ID get
// a fresh one so they never collide with catalog entries.
func ImportProfileBundle(path string) (ProfileBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ProfileBundle{}, err
	}

	var b ProfileBundle
	if err := json.Unmarshal(data, &b); err != nil {
		return ProfileBundle{}, err
	}
	if b.Type.Name == "" || b.Profile.Name == "" {
		return ProfileBundle{}, errors.New("bundle is missing the type or the profile")
	}
	if b.Type.Kind != model.KindHinge && b.Type.Kind != model.KindLock {
		return ProfileBundle{}, fmt.Errorf("bundled type has unknown kind %q", b.Type.Kind)
	}
	if b.Profile.Kind != b.Type.Kind {
		return ProfileBundle{}, fmt.Errorf("bundled profile is a %s, its type a %s", b.Profile.Kind, b.Type.Kind)
	}
	if b.Profile.TypeName != b.Type.Name {
		return ProfileBundle{}, fmt.Errorf("bundled profile references type %q, bundle carries %q", b.Profile.TypeName, b.Type.Name)
	}

	if b.Type.ID == "" {
		b.Type.ID = uuid.New().String()[:8]
	}
	if b.Profile.ID == "" {
		b.Profile.ID = uuid.New().String()[:8]
	}
	if b.Profile.LVars == nil {
		b.Profile.LVars = map[string]string{}
	}
	if b.Profile.CustomVars == nil {
		b.Profile.CustomVars = map[string]string{}
	}
	return b, nil
}
