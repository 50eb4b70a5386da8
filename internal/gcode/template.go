package gcode

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// VarKind classifies a template placeholder.
type VarKind int

const (
	VarDollar VarKind = iota // {$frame_height}: job values
	VarL                     // {L1}, {L2:default}: numbered profile values
	VarCustom                // {depth:12}: named profile values
)

func (k VarKind) String() string {
	switch k {
	case VarDollar:
		return "dollar"
	case VarL:
		return "L"
	default:
		return "custom"
	}
}

// Placeholder is one template variable reference.
type Placeholder struct {
	Raw        string // full token including braces
	Name       string // bare name, markers stripped
	Kind       VarKind
	Default    string
	HasDefault bool
}

var (
	placeholderRe = regexp.MustCompile(`\{([^{}]+)\}`)
	lNameRe       = regexp.MustCompile(`^L\d+$`)
)

// parsePlaceholder splits a brace body into name, kind and default.
// Dollar references never carry defaults; for the other kinds everything
// after the first colon is the default value.
func parsePlaceholder(raw string) Placeholder {
	body := raw[1 : len(raw)-1]
	if strings.HasPrefix(body, "$") {
		return Placeholder{Raw: raw, Name: body[1:], Kind: VarDollar}
	}
	name, def, hasDef := strings.Cut(body, ":")
	ph := Placeholder{Raw: raw, Name: name, Kind: VarCustom, Default: def, HasDefault: hasDef}
	if lNameRe.MatchString(name) {
		ph.Kind = VarL
	}
	return ph
}

// ScanPlaceholders returns the placeholders of a template in order of
// first appearance, without duplicates.
func ScanPlaceholders(text string) []Placeholder {
	seen := make(map[string]bool)
	var out []Placeholder
	for _, m := range placeholderRe.FindAllString(text, -1) {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, parsePlaceholder(m))
	}
	return out
}

// Values supplies substitution sources for a render: the job's dollar
// variables plus the selected component profile's L and custom values.
// Empty profile values fall through to the placeholder default.
type Values struct {
	Dollars model.DollarSet
	LVars   map[string]string
	Customs map[string]string
}

func (v Values) lookup(ph Placeholder) (string, bool) {
	switch ph.Kind {
	case VarDollar:
		return v.Dollars.Get(ph.Name)
	case VarL:
		if s, ok := v.LVars[ph.Name]; ok && s != "" {
			return s, true
		}
	case VarCustom:
		if s, ok := v.Customs[ph.Name]; ok && s != "" {
			return s, true
		}
	}
	if ph.HasDefault {
		return ph.Default, true
	}
	return "", false
}

// Render substitutes every placeholder in the template. All unresolved
// names are collected into a single error so the user can fix a template
// in one pass.
func Render(text string, vals Values) (string, error) {
	var missing []string
	seen := make(map[string]bool)

	out := placeholderRe.ReplaceAllStringFunc(text, func(raw string) string {
		ph := parsePlaceholder(raw)
		if s, ok := vals.lookup(ph); ok {
			return s
		}
		if !seen[ph.Name] {
			seen[ph.Name] = true
			missing = append(missing, ph.Name)
		}
		return raw
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("unresolved template variables: %s", strings.Join(missing, ", "))
	}
	return out, nil
}
