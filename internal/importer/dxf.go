package importer

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// point is a 2D coordinate in drawing units (mm).
type point struct {
	x, y float64
}

// segment is a line between two points, used to chain loose LINE
// entities into the frame outline.
type segment struct {
	start, end point
}

const (
	// chainTolerance is the endpoint snap distance when chaining lines.
	chainTolerance = 0.01
	// markTolerance is how far off-axis a hardware mark may run and how
	// close two marks must be to collapse into one.
	markTolerance = 0.5
)

// ImportDXF reads a frame elevation drawing into one project. The
// largest closed shape is the frame face, its long side the frame
// height and its short side the beam width. Center lines crossing the
// face and extending past both edges mark hinge positions; a circle on
// the face marks the lock bore. Positions are measured from the low
// coordinate end of the face, so the frame top must sit there.
func ImportDXF(path string, cfg model.AppConfig) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines [][]point
	var segments []segment
	var bores []point

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			var outline []point
			for _, v := range e.Vertices {
				outline = append(outline, point{v[0], v[1]})
			}
			if len(outline) >= 3 {
				outlines = append(outlines, outline)
			}
		case *entity.Line:
			segments = append(segments, segment{
				start: point{e.Start[0], e.Start[1]},
				end:   point{e.End[0], e.End[1]},
			})
		case *entity.Circle:
			bores = append(bores, point{e.Center[0], e.Center[1]})
		default:
			// Texts, arcs and dimensions carry no machining data
		}
	}

	closed, loose := chainFrame(segments, chainTolerance)
	outlines = append(outlines, closed...)

	face, ok := largestOutline(outlines)
	if !ok {
		result.Errors = append(result.Errors, "No closed frame outline found in DXF file")
		return result
	}

	minX, minY, maxX, maxY := bounds(face)
	ax := newAxes(minX, minY, maxX, maxY)
	height := ax.length
	width := ax.acrossMax - ax.acrossMin
	if height < 1 || width < 1 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Frame outline is degenerate (%.2f x %.2f mm)", height, width))
		return result
	}

	p := model.NewProject(projectNameFromPath(path))
	cfg.ApplyToProject(&p)

	if clamped := model.ClampHeight(height); clamped != height {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Frame height %s clamped to %s",
			model.FormatNumber(height), model.FormatNumber(clamped)))
		height = clamped
	}
	p.Frame.Height = height
	p.Frame.Width = width
	p.LockYOffset = p.Frame.AutoYOffset()
	p.HingeYOffset = p.Frame.AutoYOffset()

	// Lock bore first: its own center line must not count as a hinge.
	lockPos, haveLock := nearestBore(bores, ax, height, p.Lock.Position)
	if haveLock {
		if n := len(boresOnFace(bores, ax, height)); n > 1 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Drawing has %d bores, using the one at %s mm", n, model.FormatNumber(lockPos)))
		}
		p.Lock.Position = lockPos
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("No lock bore found, lock stays at %s mm", model.FormatNumber(p.Lock.Position)))
	}

	marks := hingeMarks(loose, ax, height)
	if haveLock {
		marks = dropNear(marks, lockPos, 2*markTolerance)
	}
	if len(marks) > len(p.Hinges) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Drawing has %d hinge marks, keeping the first %d", len(marks), len(p.Hinges)))
		marks = marks[:len(p.Hinges)]
	}
	if len(marks) == 0 {
		result.Warnings = append(result.Warnings, "No hinge marks found, set hinge positions by hand")
	}
	p.SetHingeCount(len(marks))
	for i, m := range marks {
		p.Hinges[i].Position = m
	}

	result.Projects = append(result.Projects, p)
	return result
}

// axes orients the drawing: the long side of the frame face is the
// position axis, the short side runs across the beam.
type axes struct {
	alongMin  float64
	acrossMin float64
	acrossMax float64
	length    float64
	vertical  bool // long axis is drawing Y
}

func newAxes(minX, minY, maxX, maxY float64) axes {
	if maxX-minX >= maxY-minY {
		return axes{alongMin: minX, acrossMin: minY, acrossMax: maxY, length: maxX - minX}
	}
	return axes{alongMin: minY, acrossMin: minX, acrossMax: maxX, length: maxY - minY, vertical: true}
}

// along returns the position of a point measured along the frame.
func (a axes) along(p point) float64 {
	if a.vertical {
		return p.y - a.alongMin
	}
	return p.x - a.alongMin
}

// across returns the raw coordinate of a point across the beam.
func (a axes) across(p point) float64 {
	if a.vertical {
		return p.x
	}
	return p.y
}

// hingeMarks extracts hardware center lines from loose segments: lines
// running across the beam at a constant frame position, protruding past
// both face edges. Keep-clear edges and dimension strokes stay inside
// the face and are ignored. Marks are deduplicated and sorted.
func hingeMarks(loose []segment, ax axes, height float64) []float64 {
	var marks []float64
	for _, seg := range loose {
		a1, a2 := ax.along(seg.start), ax.along(seg.end)
		if math.Abs(a1-a2) > markTolerance {
			continue
		}
		c1, c2 := ax.across(seg.start), ax.across(seg.end)
		lo, hi := math.Min(c1, c2), math.Max(c1, c2)
		if lo >= ax.acrossMin-markTolerance || hi <= ax.acrossMax+markTolerance {
			continue
		}
		pos := (a1 + a2) / 2
		if pos < -markTolerance || pos > height+markTolerance {
			continue
		}
		marks = append(marks, pos)
	}

	sort.Float64s(marks)
	deduped := marks[:0]
	for _, m := range marks {
		if len(deduped) == 0 || m-deduped[len(deduped)-1] > markTolerance {
			deduped = append(deduped, m)
		}
	}
	return deduped
}

// boresOnFace returns the frame positions of circles lying on the face.
func boresOnFace(bores []point, ax axes, height float64) []float64 {
	var positions []float64
	for _, b := range bores {
		c := ax.across(b)
		pos := ax.along(b)
		if c < ax.acrossMin || c > ax.acrossMax {
			continue
		}
		if pos < 0 || pos > height {
			continue
		}
		positions = append(positions, pos)
	}
	return positions
}

// nearestBore picks the on-face bore closest to the expected lock position.
func nearestBore(bores []point, ax axes, height, expected float64) (float64, bool) {
	positions := boresOnFace(bores, ax, height)
	if len(positions) == 0 {
		return 0, false
	}
	best := positions[0]
	for _, pos := range positions[1:] {
		if math.Abs(pos-expected) < math.Abs(best-expected) {
			best = pos
		}
	}
	return best, true
}

// dropNear removes marks within dist of pos.
func dropNear(marks []float64, pos, dist float64) []float64 {
	kept := marks[:0]
	for _, m := range marks {
		if math.Abs(m-pos) > dist {
			kept = append(kept, m)
		}
	}
	return kept
}

// chainFrame joins loose lines into closed outlines. Segments that do
// not close into a shape are returned separately so they can be read as
// hardware marks.
func chainFrame(segs []segment, tolerance float64) (outlines [][]point, loose []segment) {
	used := make([]bool, len(segs))

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []point{segs[startIdx].start, segs[startIdx].end}
		members := []int{startIdx}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					members = append(members, i)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					members = append(members, i)
					used[i] = true
					changed = true
					break
				}
			}
		}

		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			outlines = append(outlines, chain[:len(chain)-1])
		} else {
			for _, i := range members {
				loose = append(loose, segs[i])
			}
		}
	}

	return outlines, loose
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b point, tolerance float64) bool {
	dx := a.x - b.x
	dy := a.y - b.y
	return math.Sqrt(dx*dx+dy*dy) <= tolerance
}

// largestOutline picks the outline with the largest area, the frame face.
func largestOutline(outlines [][]point) ([]point, bool) {
	best := -1
	bestArea := 0.0
	for i, o := range outlines {
		if a := outlineArea(o); a > bestArea {
			best = i
			bestArea = a
		}
	}
	if best == -1 {
		return nil, false
	}
	return outlines[best], true
}

// outlineArea computes the absolute area of a polygon using the shoelace
// formula.
func outlineArea(o []point) float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].x * o[j].y
		area -= o[j].x * o[i].y
	}
	return math.Abs(area) / 2
}

// bounds returns the bounding box of an outline.
func bounds(o []point) (minX, minY, maxX, maxY float64) {
	minX, minY = o[0].x, o[0].y
	maxX, maxY = o[0].x, o[0].y
	for _, p := range o[1:] {
		minX = math.Min(minX, p.x)
		minY = math.Min(minY, p.y)
		maxX = math.Max(maxX, p.x)
		maxY = math.Max(maxY, p.y)
	}
	return minX, minY, maxX, maxY
}

// projectNameFromPath derives the project name from the drawing file name.
func projectNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
