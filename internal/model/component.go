package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ComponentKind distinguishes the two component families a frame job
// machines pockets for.
type ComponentKind string

const (
	KindHinge ComponentKind = "hinge"
	KindLock  ComponentKind = "lock"
)

// ComponentKinds lists all kinds in display order.
var ComponentKinds = []ComponentKind{KindHinge, KindLock}

// ComponentType is a machinable hinge or lock model. GCode holds the
// template text executed once per pocket, with {L*} and {$*} placeholders
// resolved at generation time. Image is an optional path to a reference
// photo shown in listings.
type ComponentType struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Kind      ComponentKind `json:"kind"`
	GCode     string        `json:"gcode"`
	Image     string        `json:"image"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

// NewComponentType creates a component type with a fresh ID and timestamps.
func NewComponentType(name string, kind ComponentKind, gcode string) ComponentType {
	now := time.Now().UTC().Format(time.RFC3339)
	return ComponentType{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Kind:      kind,
		GCode:     gcode,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes the update timestamp after an edit.
func (t *ComponentType) Touch() {
	t.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}

// TypeStore holds all known component types across both kinds.
type TypeStore struct {
	Types []ComponentType `json:"types"`
}

// NewTypeStore creates an empty type store.
func NewTypeStore() TypeStore {
	return TypeStore{
		Types: []ComponentType{},
	}
}

// Add adds a type to the store. Names must be unique within a kind so
// templates and projects can reference types by name.
func (ts *TypeStore) Add(t ComponentType) error {
	if existing := ts.FindByName(t.Kind, t.Name); existing != nil {
		return fmt.Errorf("%s type %q already exists", t.Kind, t.Name)
	}
	ts.Types = append(ts.Types, t)
	return nil
}

// Remove removes a type by ID. Returns true if found and removed.
func (ts *TypeStore) Remove(id string) bool {
	for i, t := range ts.Types {
		if t.ID == id {
			ts.Types = append(ts.Types[:i], ts.Types[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the type with the given ID, or nil.
func (ts *TypeStore) FindByID(id string) *ComponentType {
	for i := range ts.Types {
		if ts.Types[i].ID == id {
			return &ts.Types[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the named type of the given kind, or nil.
func (ts *TypeStore) FindByName(kind ComponentKind, name string) *ComponentType {
	for i := range ts.Types {
		if ts.Types[i].Kind == kind && ts.Types[i].Name == name {
			return &ts.Types[i]
		}
	}
	return nil
}

// Names returns the names of all types of one kind, in insertion order.
func (ts *TypeStore) Names(kind ComponentKind) []string {
	var names []string
	for _, t := range ts.Types {
		if t.Kind == kind {
			names = append(names, t.Name)
		}
	}
	return names
}

// ComponentProfile is a named parameter set for a component type. LVars
// supplies values for the type's {L*} placeholders, CustomVars for any
// named custom placeholders.
type ComponentProfile struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Kind       ComponentKind     `json:"kind"`
	TypeName   string            `json:"type_name"`
	LVars      map[string]string `json:"l_vars"`
	CustomVars map[string]string `json:"custom_vars"`
	CreatedAt  string            `json:"created_at"`
	UpdatedAt  string            `json:"updated_at"`
}

// NewComponentProfile creates a profile bound to the named type.
func NewComponentProfile(name string, kind ComponentKind, typeName string) ComponentProfile {
	now := time.Now().UTC().Format(time.RFC3339)
	return ComponentProfile{
		ID:         uuid.New().String()[:8],
		Name:       name,
		Kind:       kind,
		TypeName:   typeName,
		LVars:      map[string]string{},
		CustomVars: map[string]string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Touch refreshes the update timestamp after an edit.
func (p *ComponentProfile) Touch() {
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}

// ProfileStore holds all component profiles across both kinds.
type ProfileStore struct {
	Profiles []ComponentProfile `json:"profiles"`
}

// NewProfileStore creates an empty profile store.
func NewProfileStore() ProfileStore {
	return ProfileStore{
		Profiles: []ComponentProfile{},
	}
}

// Add adds a profile to the store. Names must be unique within a kind.
func (ps *ProfileStore) Add(p ComponentProfile) error {
	if existing := ps.FindByName(p.Kind, p.Name); existing != nil {
		return fmt.Errorf("%s profile %q already exists", p.Kind, p.Name)
	}
	ps.Profiles = append(ps.Profiles, p)
	return nil
}

// Remove removes a profile by ID. Returns true if found and removed.
func (ps *ProfileStore) Remove(id string) bool {
	for i, p := range ps.Profiles {
		if p.ID == id {
			ps.Profiles = append(ps.Profiles[:i], ps.Profiles[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the profile with the given ID, or nil.
func (ps *ProfileStore) FindByID(id string) *ComponentProfile {
	for i := range ps.Profiles {
		if ps.Profiles[i].ID == id {
			return &ps.Profiles[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the named profile of the given kind, or nil.
func (ps *ProfileStore) FindByName(kind ComponentKind, name string) *ComponentProfile {
	for i := range ps.Profiles {
		if ps.Profiles[i].Kind == kind && ps.Profiles[i].Name == name {
			return &ps.Profiles[i]
		}
	}
	return nil
}

// Names returns the names of all profiles of one kind, in insertion order.
func (ps *ProfileStore) Names(kind ComponentKind) []string {
	var names []string
	for _, p := range ps.Profiles {
		if p.Kind == kind {
			names = append(names, p.Name)
		}
	}
	return names
}
