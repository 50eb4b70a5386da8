package model

// MachineProfile defines controller-specific output conventions for
// generated programs.
type MachineProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Comment style
	CommentPrefix string `json:"comment_prefix"` // comment start (e.g. ";")
	CommentSuffix string `json:"comment_suffix"` // comment end (e.g. ")" for Fanuc)

	// End codes appended when a template does not end the program itself
	EndCode []string `json:"end_code"`

	// Number formatting
	DecimalPlaces int `json:"decimal_places"`
}

// Built-in machine profiles
var MachineProfiles = []MachineProfile{
	{
		Name:          "Fanuc",
		Description:   "Fanuc controllers (parenthesised comments, M30)",
		CommentPrefix: "(",
		CommentSuffix: ")",
		EndCode:       []string{"M30"},
		DecimalPlaces: 3,
	},
	{
		Name:          "Sinumerik",
		Description:   "Siemens Sinumerik controllers",
		CommentPrefix: ";",
		CommentSuffix: "",
		EndCode:       []string{"M30"},
		DecimalPlaces: 3,
	},
	{
		Name:          "Generic",
		Description:   "Generic standard GCode",
		CommentPrefix: ";",
		CommentSuffix: "",
		EndCode:       []string{"M5", "M2"},
		DecimalPlaces: 3,
	},
}

// GetMachineProfile returns a machine profile by name, or the Generic
// profile if not found.
func GetMachineProfile(name string) MachineProfile {
	for _, p := range MachineProfiles {
		if p.Name == name {
			return p
		}
	}
	return MachineProfiles[len(MachineProfiles)-1] // Generic (last one)
}

// GetMachineProfileNames returns a list of all available profile names.
func GetMachineProfileNames() []string {
	var names []string
	for _, p := range MachineProfiles {
		names = append(names, p.Name)
	}
	return names
}

// Offsets holds the machine work offsets applied to every program.
type Offsets struct {
	X float64 `json:"x"` // mm along the frame axis
	Y float64 `json:"y"` // mm across the frame
	Z float64 `json:"z"` // mm tool retract height
}

// Travel holds the machine travel envelope in program coordinates.
// Generated programs must not command positions outside it. The X axis
// reaches above the frame top datum because PM1 anchors at -25.
type Travel struct {
	MinX float64 `json:"min_x"` // mm
	MaxX float64 `json:"max_x"` // mm
	MinY float64 `json:"min_y"` // mm
	MaxY float64 `json:"max_y"` // mm
	MinZ float64 `json:"min_z"` // mm
	MaxZ float64 `json:"max_z"` // mm
}

// TravelViolation records a commanded program position outside the
// machine's travel envelope.
type TravelViolation struct {
	Program string  `json:"program"` // program file name
	Axis    string  `json:"axis"`
	Value   float64 `json:"value"` // worst commanded position on the axis
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Excess  float64 `json:"excess"` // mm outside the envelope
}

// MachineSetup bundles everything machine-specific: the controller
// dialect, work offsets, travel limits and the placement geometry.
type MachineSetup struct {
	Controller string   `json:"controller"`
	Offsets    Offsets  `json:"offsets"`
	Travel     Travel   `json:"travel"`
	Geometry   Geometry `json:"geometry"`
}

// DefaultMachineSetup returns the built-in machine setup: a generic
// controller with a travel envelope sized for the tallest frame.
func DefaultMachineSetup() MachineSetup {
	return MachineSetup{
		Controller: "Generic",
		Offsets:    Offsets{X: 0, Y: 0, Z: 50},
		Travel:     Travel{MinX: -100, MaxX: 3200, MinY: 0, MaxY: 400, MinZ: -50, MaxZ: 200},
		Geometry:   DefaultGeometry(),
	}
}
