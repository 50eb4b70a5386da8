package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default frame values applied to new projects
	DefaultFrameHeight    float64 `json:"default_frame_height"`
	DefaultFrameWidth     float64 `json:"default_frame_width"`
	DefaultDoorWidth      float64 `json:"default_door_width"`
	DefaultHingeCount     int     `json:"default_hinge_count"`
	DefaultOrientation    Side    `json:"default_orientation"`
	DefaultMachineProfile string  `json:"default_machine_profile"`

	// Application preferences
	OutputDir      string   `json:"output_dir"` // empty = current directory
	BackupCount    int      `json:"backup_count"`
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from NewProject().
func DefaultAppConfig() AppConfig {
	p := NewProject("")
	return AppConfig{
		DefaultFrameHeight:    p.Frame.Height,
		DefaultFrameWidth:     p.Frame.Width,
		DefaultDoorWidth:      p.Frame.DoorWidth,
		DefaultHingeCount:     3,
		DefaultOrientation:    p.Orientation,
		DefaultMachineProfile: DefaultMachineSetup().Controller,
		OutputDir:             "",
		BackupCount:           3,
		RecentProjects:        []string{},
	}
}

// ApplyToProject copies the default values from AppConfig into a project.
// This is used when creating a new project so it inherits the user's
// saved defaults.
func (c AppConfig) ApplyToProject(p *Project) {
	p.Frame.Height = c.DefaultFrameHeight
	p.Frame.Width = c.DefaultFrameWidth
	p.Frame.DoorWidth = c.DefaultDoorWidth
	p.Orientation = c.DefaultOrientation
	p.LockYOffset = p.Frame.AutoYOffset()
	p.HingeYOffset = p.Frame.AutoYOffset()
	p.SetHingeCount(c.DefaultHingeCount)
}

// AddRecentProject records a project path at the front of the recents
// list, dropping duplicates and keeping at most ten entries.
func (c *AppConfig) AddRecentProject(path string) {
	recents := []string{path}
	for _, r := range c.RecentProjects {
		if r != path {
			recents = append(recents, r)
		}
	}
	if len(recents) > 10 {
		recents = recents[:10]
	}
	c.RecentProjects = recents
}
