package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Project is one door frame job: the frame blank, the lock and hinge
// layout, the selected component profiles and any generated programs.
type Project struct {
	Name        string `json:"name"`
	Frame       Frame  `json:"frame"`
	Orientation Side   `json:"orientation"`

	Lock         Lock     `json:"lock"`
	Hinges       [4]Hinge `json:"hinges"`
	LockYOffset  float64  `json:"lock_y_offset"`
	HingeYOffset float64  `json:"hinge_y_offset"`

	SelectedHinge string `json:"selected_hinge"`
	SelectedLock  string `json:"selected_lock"`

	PM1Position float64 `json:"pm1_position"`

	Overrides DollarSet          `json:"overrides"`
	Programs  []GeneratedProgram `json:"programs"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewProject creates a project with workable defaults: a standard
// 2100mm frame, the lock at its catalog position and no hinges placed.
// Hinge positions are filled in by the placement rules once the hinge
// count is known.
func NewProject(name string) Project {
	now := time.Now().UTC().Format(time.RFC3339)
	geo := DefaultGeometry()
	frame := Frame{Height: 2100, Width: 88, DoorWidth: 40}
	return Project{
		Name:         name,
		Frame:        frame,
		Orientation:  SideRight,
		Lock:         Lock{Position: geo.LockPosition, Active: true, Order: 1},
		LockYOffset:  frame.AutoYOffset(),
		HingeYOffset: frame.AutoYOffset(),
		PM1Position:  geo.PM1Anchor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Touch refreshes the update timestamp after an edit.
func (p *Project) Touch() {
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}

// HingeCount returns the number of active hinges.
func (p *Project) HingeCount() int {
	n := 0
	for _, h := range p.Hinges {
		if h.Active {
			n++
		}
	}
	return n
}

// ActiveHinges returns the active hinges in slot order.
func (p *Project) ActiveHinges() []Hinge {
	var out []Hinge
	for _, h := range p.Hinges {
		if h.Active {
			out = append(out, h)
		}
	}
	return out
}

// SetHingeCount activates the first count hinge slots and deactivates
// the rest, keeping existing positions on slots that stay active.
func (p *Project) SetHingeCount(count int) {
	for i := range p.Hinges {
		p.Hinges[i].Active = i < count
		if p.Hinges[i].Active && p.Hinges[i].Order == 0 {
			p.Hinges[i].Order = i + 1
		}
	}
}

// Obstacles returns the exclusion zones the placement solver must avoid:
// one per active lock or hinge that has a real position. Inactive
// components and unplaced slots contribute nothing.
func (p *Project) Obstacles(safety float64) []Obstacle {
	var obs []Obstacle
	if p.Lock.Active && p.Lock.Position > 0 {
		obs = append(obs, Obstacle{Label: "Lock", Center: p.Lock.Position, Safety: safety})
	}
	for i, h := range p.Hinges {
		if h.Active && h.Position > 0 {
			obs = append(obs, Obstacle{
				Label:  fmt.Sprintf("Hinge %d", i+1),
				Center: h.Position,
				Safety: safety,
			})
		}
	}
	return obs
}

// FindProgram returns the stored program for a side and kind, or nil.
func (p *Project) FindProgram(side Side, kind ProgramKind) *GeneratedProgram {
	for i := range p.Programs {
		if p.Programs[i].Side == side && p.Programs[i].Kind == kind {
			return &p.Programs[i]
		}
	}
	return nil
}

// StorePrograms replaces any stored programs matching the side and kind
// of the new ones, appending programs not stored before.
func (p *Project) StorePrograms(programs []GeneratedProgram) {
	for _, g := range programs {
		if existing := p.FindProgram(g.Side, g.Kind); existing != nil {
			*existing = g
		} else {
			p.Programs = append(p.Programs, g)
		}
	}
}

// ProfileSet is a saved combination of component selections that can be
// applied to new projects in one step.
type ProfileSet struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	SelectedHinge string `json:"selected_hinge"`
	SelectedLock  string `json:"selected_lock"`
	HingeCount    int    `json:"hinge_count"`
	Orientation   Side   `json:"orientation"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// NewProfileSet captures the component selection of a project.
func NewProfileSet(name, description string, p *Project) ProfileSet {
	now := time.Now().UTC().Format(time.RFC3339)
	return ProfileSet{
		ID:            uuid.New().String()[:8],
		Name:          name,
		Description:   description,
		SelectedHinge: p.SelectedHinge,
		SelectedLock:  p.SelectedLock,
		HingeCount:    p.HingeCount(),
		Orientation:   p.Orientation,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ApplyTo writes the set's selections into a project. Hinge positions
// are not touched, only the active slot count.
func (s ProfileSet) ApplyTo(p *Project) {
	p.SelectedHinge = s.SelectedHinge
	p.SelectedLock = s.SelectedLock
	p.Orientation = s.Orientation
	p.SetHingeCount(s.HingeCount)
	p.Touch()
}

// SetStore holds all saved profile sets.
type SetStore struct {
	Sets []ProfileSet `json:"sets"`
}

// NewSetStore creates an empty set store.
func NewSetStore() SetStore {
	return SetStore{
		Sets: []ProfileSet{},
	}
}

// Add adds a set to the store. Names must be unique.
func (ss *SetStore) Add(s ProfileSet) error {
	if existing := ss.FindByName(s.Name); existing != nil {
		return fmt.Errorf("set %q already exists", s.Name)
	}
	ss.Sets = append(ss.Sets, s)
	return nil
}

// Remove removes a set by ID. Returns true if found and removed.
func (ss *SetStore) Remove(id string) bool {
	for i, s := range ss.Sets {
		if s.ID == id {
			ss.Sets = append(ss.Sets[:i], ss.Sets[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the set with the given ID, or nil.
func (ss *SetStore) FindByID(id string) *ProfileSet {
	for i := range ss.Sets {
		if ss.Sets[i].ID == id {
			return &ss.Sets[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first set with the given name, or nil.
func (ss *SetStore) FindByName(name string) *ProfileSet {
	for i := range ss.Sets {
		if ss.Sets[i].Name == name {
			return &ss.Sets[i]
		}
	}
	return nil
}

// Names returns a list of set names for listings.
func (ss *SetStore) Names() []string {
	names := make([]string, len(ss.Sets))
	for i, s := range ss.Sets {
		names[i] = s.Name
	}
	return names
}
