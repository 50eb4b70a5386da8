package model

// FrameTemplates holds the master G-code templates for the two hinging
// sides. Templates reference job values with {$name} placeholders that
// are substituted at generation time.
type FrameTemplates struct {
	Right string `json:"right_gcode"`
	Left  string `json:"left_gcode"`
}

// ForSide returns the template text for the given side.
func (ft FrameTemplates) ForSide(side Side) string {
	if side == SideLeft {
		return ft.Left
	}
	return ft.Right
}

// SetForSide replaces the template text for the given side.
func (ft *FrameTemplates) SetForSide(side Side, text string) {
	if side == SideLeft {
		ft.Left = text
	} else {
		ft.Right = text
	}
}

// DefaultFrameTemplates returns the built-in frame programs. They drill
// the four machining points along the profile and position for the lock
// and hinge pockets, leaving component-specific cycles to the hinge and
// lock templates.
func DefaultFrameTemplates() FrameTemplates {
	return FrameTemplates{
		Right: defaultFrameRight,
		Left:  defaultFrameLeft,
	}
}

const defaultFrameRight = `G21
G90
G54
(FRAME RIGHT H={$frame_height} W={$frame_width})
G0 Z{$machine_z_offset}
G0 X{$pm1_position} Y{$machine_y_offset}
G81 Z-12 R2 F300
G0 X{$pm2_position}
G81 Z-12 R2 F300
G0 X{$pm3_position}
G81 Z-12 R2 F300
G0 X{$pm4_position}
G81 Z-12 R2 F300
G80
G0 X{$lock_position} Y{$lock_y_offset}
G0 X{$hinge1_position} Y{$hinge_y_offset}
G0 Z{$machine_z_offset}
M5
M2
`

const defaultFrameLeft = `G21
G90
G54
(FRAME LEFT H={$frame_height} W={$frame_width})
G0 Z{$machine_z_offset}
G0 X{$pm4_position} Y{$machine_y_offset}
G81 Z-12 R2 F300
G0 X{$pm3_position}
G81 Z-12 R2 F300
G0 X{$pm2_position}
G81 Z-12 R2 F300
G0 X{$pm1_position}
G81 Z-12 R2 F300
G80
G0 X{$lock_position} Y{$lock_y_offset}
G0 X{$hinge1_position} Y{$hinge_y_offset}
G0 Z{$machine_z_offset}
M5
M2
`
