package export

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// Vertical lanes of the layout chart, bottom to top.
const (
	laneSafety   = 1
	laneHardware = 2
	lanePM       = 3
)

// ExportChart writes an interactive HTML view of the frame layout:
// machining points, hardware positions and keep-clear zone edges on
// separate lanes along the frame axis, for a quick browser preview.
func ExportChart(path string, job Job) error {
	if job.Project == nil {
		return fmt.Errorf("no project to export")
	}

	p := job.Project
	lo, hi := axisBounds(job)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("FrameWizard - %s", p.Name),
			Width:     "1180px",
			Height:    "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s frame layout", p.Name),
			Subtitle: fmt.Sprintf("Frame %s x %s mm, door %s mm, %s hand",
				model.FormatNumber(p.Frame.Height), model.FormatNumber(p.Frame.Width),
				model.FormatNumber(p.Frame.DoorWidth), p.Orientation),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "mm from top datum",
			Type: "value",
			Min:  lo - 50,
			Max:  hi + 50,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Min:  0,
			Max:  4,
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	var pmData []opts.ScatterData
	for i := 1; i <= 4; i++ {
		pmData = append(pmData, opts.ScatterData{
			Name:       fmt.Sprintf("PM%d", i),
			Value:      []interface{}{job.Placement.Position(i), lanePM},
			Symbol:     "roundRect",
			SymbolSize: 22,
		})
	}
	scatter.AddSeries("Machining points", pmData)

	var hwData []opts.ScatterData
	if p.Lock.Active && p.Lock.Position > 0 {
		hwData = append(hwData, opts.ScatterData{
			Name:       "Lock",
			Value:      []interface{}{p.Lock.Position, laneHardware},
			Symbol:     "diamond",
			SymbolSize: 18,
		})
	}
	for i, h := range p.Hinges {
		if h.Active && h.Position > 0 {
			hwData = append(hwData, opts.ScatterData{
				Name:       fmt.Sprintf("Hinge %d", i+1),
				Value:      []interface{}{h.Position, laneHardware},
				Symbol:     "circle",
				SymbolSize: 14,
			})
		}
	}
	if len(hwData) > 0 {
		scatter.AddSeries("Hardware", hwData)
	}

	var zoneData []opts.ScatterData
	for _, obstacle := range job.Obstacles() {
		start, end := obstacle.Interval()
		zoneData = append(zoneData,
			opts.ScatterData{
				Name:       obstacle.Label + " zone start",
				Value:      []interface{}{start, laneSafety},
				Symbol:     "triangle",
				SymbolSize: 10,
			},
			opts.ScatterData{
				Name:       obstacle.Label + " zone end",
				Value:      []interface{}{end, laneSafety},
				Symbol:     "triangle",
				SymbolSize: 10,
			})
	}
	if len(zoneData) > 0 {
		scatter.AddSeries("Keep-clear edges", zoneData)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if err := scatter.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	return f.Close()
}
