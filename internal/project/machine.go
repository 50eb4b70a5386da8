package project

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// machineDoc mirrors MachineSetup with TOML field names. The machine
// file is meant to be hand-edited on site, so it gets the readable
// format instead of JSON.
type machineDoc struct {
	Controller string      `toml:"controller"`
	Offsets    offsetsDoc  `toml:"offsets"`
	Travel     travelDoc   `toml:"travel"`
	Geometry   geometryDoc `toml:"geometry"`
}

type offsetsDoc struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	Z float64 `toml:"z"`
}

type travelDoc struct {
	MinX float64 `toml:"min_x"`
	MaxX float64 `toml:"max_x"`
	MinY float64 `toml:"min_y"`
	MaxY float64 `toml:"max_y"`
	MinZ float64 `toml:"min_z"`
	MaxZ float64 `toml:"max_z"`
}

type geometryDoc struct {
	ComponentSafety float64 `toml:"component_safety"`
	MinRangeSize    float64 `toml:"min_range_size"`
	PM1Anchor       float64 `toml:"pm1_anchor"`
	LockPosition    float64 `toml:"lock_position"`
	PM              []pmDoc `toml:"pm"`
}

type pmDoc struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// SaveMachineSetup writes the machine configuration as TOML.
func SaveMachineSetup(path string, m model.MachineSetup) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(toMachineDoc(m))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadMachineSetup reads the machine configuration. A missing file
// yields the defaults; a partial file keeps the defaults for every key
// it does not set.
func LoadMachineSetup(path string) (model.MachineSetup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultMachineSetup(), nil
		}
		return model.MachineSetup{}, err
	}

	doc := toMachineDoc(model.DefaultMachineSetup())
	if err := toml.Unmarshal(data, &doc); err != nil {
		return model.MachineSetup{}, err
	}
	return fromMachineDoc(doc), nil
}

func toMachineDoc(m model.MachineSetup) machineDoc {
	doc := machineDoc{
		Controller: m.Controller,
		Offsets:    offsetsDoc{X: m.Offsets.X, Y: m.Offsets.Y, Z: m.Offsets.Z},
		Travel: travelDoc{
			MinX: m.Travel.MinX, MaxX: m.Travel.MaxX,
			MinY: m.Travel.MinY, MaxY: m.Travel.MaxY,
			MinZ: m.Travel.MinZ, MaxZ: m.Travel.MaxZ,
		},
		Geometry: geometryDoc{
			ComponentSafety: m.Geometry.ComponentSafety,
			MinRangeSize:    m.Geometry.MinRangeSize,
			PM1Anchor:       m.Geometry.PM1Anchor,
			LockPosition:    m.Geometry.LockPosition,
		},
	}
	for _, pm := range m.Geometry.PM {
		doc.Geometry.PM = append(doc.Geometry.PM, pmDoc{Width: pm.Width, Height: pm.Height})
	}
	return doc
}

func fromMachineDoc(doc machineDoc) model.MachineSetup {
	m := model.MachineSetup{
		Controller: doc.Controller,
		Offsets:    model.Offsets{X: doc.Offsets.X, Y: doc.Offsets.Y, Z: doc.Offsets.Z},
		Travel: model.Travel{
			MinX: doc.Travel.MinX, MaxX: doc.Travel.MaxX,
			MinY: doc.Travel.MinY, MaxY: doc.Travel.MaxY,
			MinZ: doc.Travel.MinZ, MaxZ: doc.Travel.MaxZ,
		},
		Geometry: model.DefaultGeometry(),
	}
	m.Geometry.ComponentSafety = doc.Geometry.ComponentSafety
	m.Geometry.MinRangeSize = doc.Geometry.MinRangeSize
	m.Geometry.PM1Anchor = doc.Geometry.PM1Anchor
	m.Geometry.LockPosition = doc.Geometry.LockPosition
	for i, pm := range doc.Geometry.PM {
		if i >= len(m.Geometry.PM) {
			break
		}
		m.Geometry.PM[i] = model.PMGeometry{Width: pm.Width, Height: pm.Height}
	}
	return m
}
