package gcode

import (
	"fmt"
	"strings"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// Generator renders machine programs for a frame job.
type Generator struct {
	Setup   model.MachineSetup
	profile model.MachineProfile
}

func New(setup model.MachineSetup) *Generator {
	return &Generator{
		Setup:   setup,
		profile: model.GetMachineProfile(setup.Controller),
	}
}

// Inputs bundles the project state a generation run reads. The same
// inputs always produce the same programs and fingerprints.
type Inputs struct {
	Project   *model.Project
	Placement model.Placement
	Types     *model.TypeStore
	Profiles  *model.ProfileStore
	Templates model.FrameTemplates
}

// GenerateAll renders the program set for the given sides, or for both
// sides when none are named.
func (g *Generator) GenerateAll(in Inputs, sides ...model.Side) ([]model.GeneratedProgram, error) {
	if len(sides) == 0 {
		sides = model.Sides
	}
	var programs []model.GeneratedProgram
	for _, side := range sides {
		ps, err := g.GenerateSide(in, side)
		if err != nil {
			return nil, err
		}
		programs = append(programs, ps...)
	}
	return programs, nil
}

// GenerateSide renders the frame program plus the lock and hinge
// programs that apply to the project: an inactive lock or a job without
// hinges simply produces fewer files.
func (g *Generator) GenerateSide(in Inputs, side model.Side) ([]model.GeneratedProgram, error) {
	var programs []model.GeneratedProgram

	frame, err := g.FrameProgram(in, side)
	if err != nil {
		return nil, err
	}
	programs = append(programs, frame)

	if in.Project.Lock.Active {
		lock, err := g.ComponentProgram(in, side, model.KindLock)
		if err != nil {
			return nil, err
		}
		programs = append(programs, lock)
	}
	if in.Project.HingeCount() > 0 {
		hinge, err := g.ComponentProgram(in, side, model.KindHinge)
		if err != nil {
			return nil, err
		}
		programs = append(programs, hinge)
	}
	return programs, nil
}

// FrameProgram renders the per-side master template with the job values.
func (g *Generator) FrameProgram(in Inputs, side model.Side) (model.GeneratedProgram, error) {
	vals := Values{Dollars: g.jobValues(in, side)}
	body, err := Render(in.Templates.ForSide(side), vals)
	if err != nil {
		return model.GeneratedProgram{}, fmt.Errorf("%s frame template: %w", side, err)
	}

	fp, err := g.Fingerprint(in, side, model.ProgramFrame)
	if err != nil {
		return model.GeneratedProgram{}, err
	}
	code := g.assemble(fmt.Sprintf("%s frame", side), in, body)
	name := model.ProgramFileName(in.Project.Name, side, model.ProgramFrame)
	return model.NewGeneratedProgram(model.ProgramFrame, side, name, code, fp), nil
}

// ComponentProgram renders the selected lock or hinge profile's type
// template, feeding it the profile's L and custom values on top of the
// job values.
func (g *Generator) ComponentProgram(in Inputs, side model.Side, kind model.ComponentKind) (model.GeneratedProgram, error) {
	prof, typ, err := g.selection(in, kind)
	if err != nil {
		return model.GeneratedProgram{}, err
	}

	vals := Values{
		Dollars: g.jobValues(in, side),
		LVars:   prof.LVars,
		Customs: prof.CustomVars,
	}
	body, err := Render(typ.GCode, vals)
	if err != nil {
		return model.GeneratedProgram{}, fmt.Errorf("%s type %q: %w", kind, typ.Name, err)
	}

	pk := programKind(kind)
	fp, err := g.Fingerprint(in, side, pk)
	if err != nil {
		return model.GeneratedProgram{}, err
	}
	title := fmt.Sprintf("%s %s (%s)", side, kind, prof.Name)
	code := g.assemble(title, in, body)
	name := model.ProgramFileName(in.Project.Name, side, pk)
	return model.NewGeneratedProgram(pk, side, name, code, fp), nil
}

// Fingerprint hashes the inputs feeding one program so stored programs
// can be checked for staleness without rendering.
func (g *Generator) Fingerprint(in Inputs, side model.Side, kind model.ProgramKind) (string, error) {
	vars := g.jobValues(in, side)
	switch kind {
	case model.ProgramFrame:
		return model.GenerationFingerprint(vars, in.Templates.ForSide(side), g.profile.Name, side, kind), nil
	case model.ProgramLock, model.ProgramHinge:
		ck := model.KindLock
		if kind == model.ProgramHinge {
			ck = model.KindHinge
		}
		prof, typ, err := g.selection(in, ck)
		if err != nil {
			return "", err
		}
		return model.GenerationFingerprint(vars, prof.LVars, prof.CustomVars, typ.GCode, g.profile.Name, side, kind), nil
	default:
		return "", fmt.Errorf("unknown program kind %q", kind)
	}
}

// jobValues builds the dollar catalog for one side. The orientation
// variable follows the side being generated, not the project setting,
// so both program sets of a job carry their own handing.
func (g *Generator) jobValues(in Inputs, side model.Side) model.DollarSet {
	vars := model.JobVariables(in.Project, in.Placement, g.Setup)
	vars.Set("orientation", string(side))
	return vars
}

// selection resolves the project's chosen profile and its type for a
// component kind.
func (g *Generator) selection(in Inputs, kind model.ComponentKind) (*model.ComponentProfile, *model.ComponentType, error) {
	name := in.Project.SelectedLock
	if kind == model.KindHinge {
		name = in.Project.SelectedHinge
	}
	if name == "" {
		return nil, nil, fmt.Errorf("no %s profile selected", kind)
	}
	prof := in.Profiles.FindByName(kind, name)
	if prof == nil {
		return nil, nil, fmt.Errorf("unknown %s profile %q", kind, name)
	}
	typ := in.Types.FindByName(kind, prof.TypeName)
	if typ == nil {
		return nil, nil, fmt.Errorf("%s profile %q references unknown type %q", kind, prof.Name, prof.TypeName)
	}
	return prof, typ, nil
}

// assemble wraps a rendered body with the header comments and, when the
// template does not end the program itself, the controller's end codes.
func (g *Generator) assemble(title string, in Inputs, body string) string {
	var b strings.Builder
	g.writeHeader(&b, title, in)
	b.WriteString(strings.TrimRight(body, "\n"))
	b.WriteString("\n")
	if !endsProgram(body) {
		for _, code := range g.profile.EndCode {
			b.WriteString(code + "\n")
		}
	}
	return b.String()
}

func (g *Generator) writeHeader(b *strings.Builder, title string, in Inputs) {
	p := in.Project

	b.WriteString(g.comment(fmt.Sprintf("FrameWizard %s program", title)))
	b.WriteString(g.comment(fmt.Sprintf("Project: %s", p.Name)))
	b.WriteString(g.comment(fmt.Sprintf("Frame: %.1f x %.1f mm, door %.1f mm",
		p.Frame.Height, p.Frame.Width, p.Frame.DoorWidth)))
	b.WriteString(g.comment(fmt.Sprintf("Offsets: X%s Y%s Z%s",
		g.format(g.Setup.Offsets.X), g.format(g.Setup.Offsets.Y), g.format(g.Setup.Offsets.Z))))
	b.WriteString(g.comment(fmt.Sprintf("Controller: %s", g.profile.Name)))
	b.WriteString("\n")
}

// endsProgram reports whether the body already contains a program end
// word. Comments are stripped first so a commented M30 does not count.
func endsProgram(body string) bool {
	for _, line := range strings.Split(body, "\n") {
		for _, tok := range strings.Fields(strings.ToUpper(stripComment(line))) {
			if tok == "M2" || tok == "M02" || tok == "M30" {
				return true
			}
		}
	}
	return false
}

// comment wraps text in the controller's comment syntax.
func (g *Generator) comment(text string) string {
	return g.profile.CommentPrefix + " " + text + g.profile.CommentSuffix + "\n"
}

// format formats a coordinate according to the controller's decimal places.
func (g *Generator) format(v float64) string {
	format := fmt.Sprintf("%%.%df", g.profile.DecimalPlaces)
	return fmt.Sprintf(format, v)
}

func programKind(kind model.ComponentKind) model.ProgramKind {
	if kind == model.KindLock {
		return model.ProgramLock
	}
	return model.ProgramHinge
}
