package model

import "fmt"

// DollarVariable is one named job value referenced from G-code templates
// as {$name}. Values are kept as formatted strings so templates receive
// exactly what the machine should see.
type DollarVariable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DollarSet is an ordered collection of dollar variables. Order matters:
// it is the order values appear in exports and editor listings, so Set
// preserves insertion order and updates in place.
type DollarSet struct {
	Variables []DollarVariable `json:"variables"`
}

// Set updates the value of name, appending it if not present.
func (ds *DollarSet) Set(name, value string) {
	for i := range ds.Variables {
		if ds.Variables[i].Name == name {
			ds.Variables[i].Value = value
			return
		}
	}
	ds.Variables = append(ds.Variables, DollarVariable{Name: name, Value: value})
}

// Get returns the value of name.
func (ds *DollarSet) Get(name string) (string, bool) {
	for _, v := range ds.Variables {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// Names returns all variable names in insertion order.
func (ds *DollarSet) Names() []string {
	names := make([]string, len(ds.Variables))
	for i, v := range ds.Variables {
		names[i] = v.Name
	}
	return names
}

// Merge applies every variable of other on top of ds, preserving ds's
// ordering for existing names.
func (ds *DollarSet) Merge(other DollarSet) {
	for _, v := range other.Variables {
		ds.Set(v.Name, v.Value)
	}
}

// boolFlag renders an active flag the way templates expect it.
func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// JobVariables builds the full dollar-variable catalog for one job:
// frame dimensions, machine offsets, lock and hinge data, the computed
// machining-point positions and the selected component profiles. User
// overrides from the project are applied last.
func JobVariables(p *Project, pl Placement, m MachineSetup) DollarSet {
	var ds DollarSet

	ds.Set("frame_height", FormatNumber(p.Frame.Height))
	ds.Set("frame_width", FormatNumber(p.Frame.Width))
	ds.Set("door_width", FormatNumber(p.Frame.DoorWidth))

	ds.Set("machine_x_offset", FormatNumber(m.Offsets.X))
	ds.Set("machine_y_offset", FormatNumber(m.Offsets.Y))
	ds.Set("machine_z_offset", FormatNumber(m.Offsets.Z))

	ds.Set("lock_position", FormatNumber(p.Lock.Position))
	ds.Set("lock_y_offset", FormatNumber(p.LockYOffset))
	ds.Set("lock_active", boolFlag(p.Lock.Active))
	ds.Set("lock_order", FormatNumber(float64(p.Lock.Order)))

	for i, h := range p.Hinges {
		n := i + 1
		ds.Set(hingeVar(n, "position"), FormatNumber(h.Position))
		ds.Set(hingeVar(n, "active"), boolFlag(h.Active))
		ds.Set(hingeVar(n, "order"), FormatNumber(float64(h.Order)))
	}
	ds.Set("hinge_y_offset", FormatNumber(p.HingeYOffset))

	for i := 1; i <= 4; i++ {
		ds.Set(pmVar(i), FormatNumber(pl.Position(i)))
	}

	ds.Set("orientation", string(p.Orientation))
	ds.Set("selected_hinge", p.SelectedHinge)
	ds.Set("selected_lock", p.SelectedLock)

	ds.Merge(p.Overrides)
	return ds
}

func hingeVar(n int, field string) string {
	return fmt.Sprintf("hinge%d_%s", n, field)
}

func pmVar(n int) string {
	return fmt.Sprintf("pm%d_position", n)
}
