// Package mosaic lays out multi-panel imaging grids on the sky.
//
// Two stepping conventions are provided: spherical stepping, which matches
// the pane centers produced by common mosaic-planning tools (ASIAIR,
// N.I.N.A.), and gnomonic stepping, which projects true panel corner
// polygons for overlay rendering.
package mosaic

import (
	"math"

	"github.com/litescript/ls-framing/internal/astro"
)

// Spec describes a mosaic grid.
type Spec struct {
	PanelWDeg   float64 // single panel width in degrees
	PanelHDeg   float64 // single panel height in degrees
	Cols        int
	Rows        int
	OverlapPct  float64 // overlap between adjacent panels, 0-100
	RotationDeg float64 // position angle, clockwise in display convention
}

// Valid reports whether the grid parameters satisfy their invariants.
func (s Spec) Valid() bool {
	if !astro.IsValidFOV(s.PanelWDeg) || !astro.IsValidFOV(s.PanelHDeg) {
		return false
	}
	if s.Cols < 1 || s.Rows < 1 {
		return false
	}
	if s.OverlapPct < 0 || s.OverlapPct >= 100 {
		return false
	}
	return astro.IsValidRotation(s.RotationDeg)
}

// Dims describes the overall extent of a mosaic grid.
type Dims struct {
	TotalW float64
	TotalH float64
	StepW  float64
	StepH  float64
}

// Dimensions computes the step size and total extent of a mosaic grid.
// step = panel*(1-overlap/100); total = panel + (n-1)*step.
func Dimensions(panelW, panelH float64, cols, rows int, overlapPct float64) Dims {
	stepW := panelW * (1 - overlapPct/100)
	stepH := panelH * (1 - overlapPct/100)
	return Dims{
		TotalW: panelW + float64(cols-1)*stepW,
		TotalH: panelH + float64(rows-1)*stepH,
		StepW:  stepW,
		StepH:  stepH,
	}
}

// Pane is a single mosaic panel center.
type Pane struct {
	Col    int
	Row    int
	Center astro.SkyPoint
}

// PanePolygon is a single mosaic panel as a 4-corner sky polygon.
type PanePolygon struct {
	Col     int
	Row     int
	Corners [4]astro.SkyPoint
}

// cosDecFloor is the cos(dec) clamp applied by the spherical stepping when
// a pane center lands within 0.1° of a pole (cos(89.9°) ≈ 0.00175).
const cosDecFloor = 0.00175

// rotate applies a 2D rotation by -rotationDeg. The negation converts the
// clockwise display convention to the counter-clockwise math convention.
func rotate(x, y, rotationDeg float64) (float64, float64) {
	theta := -rotationDeg * math.Pi / 180
	cos := math.Cos(theta)
	sin := math.Sin(theta)
	return x*cos - y*sin, x*sin + y*cos
}

// gridOffset returns the unrotated planar offset of a cell center from the
// mosaic center: (i - (n-1)/2) * step.
func gridOffset(i, n int, step float64) float64 {
	return (float64(i) - float64(n-1)/2) * step
}

// PanesSpherical lays out pane centers using cosine-corrected spherical
// stepping: Dec is stepped linearly and the RA offset is divided by
// cos(dec) at the pane. This reproduces the pane centers of ASIAIR and
// N.I.N.A. mosaic plans.
func PanesSpherical(s Spec, center astro.SkyPoint) []Pane {
	d := Dimensions(s.PanelWDeg, s.PanelHDeg, s.Cols, s.Rows, s.OverlapPct)

	panes := make([]Pane, 0, s.Cols*s.Rows)
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			ox := gridOffset(col, s.Cols, d.StepW)
			oy := gridOffset(row, s.Rows, d.StepH)
			rx, ry := rotate(ox, oy, s.RotationDeg)

			paneDec := center.DecDeg + ry
			cosDec := math.Cos(paneDec * math.Pi / 180)
			if math.Abs(paneDec) > 89.9 && cosDec < cosDecFloor {
				cosDec = cosDecFloor
			}

			panes = append(panes, Pane{
				Col: col,
				Row: row,
				Center: astro.SkyPoint{
					RAdeg:  astro.NormalizeAngle(center.RAdeg + rx/cosDec),
					DecDeg: paneDec,
				},
			})
		}
	}
	return panes
}

// PanesGnomonic lays out panes as true 4-corner sky polygons: corner
// offsets are rotated together with the pane-center offset, then projected
// through the tangent plane at the mosaic center. The x offset is negated
// before projection because RA increases opposite to screen x.
func PanesGnomonic(s Spec, center astro.SkyPoint) []PanePolygon {
	d := Dimensions(s.PanelWDeg, s.PanelHDeg, s.Cols, s.Rows, s.OverlapPct)

	halfW := s.PanelWDeg / 2
	halfH := s.PanelHDeg / 2
	corners := [4][2]float64{
		{-halfW, halfH},  // NW
		{halfW, halfH},   // NE
		{halfW, -halfH},  // SE
		{-halfW, -halfH}, // SW
	}

	panes := make([]PanePolygon, 0, s.Cols*s.Rows)
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			ox := gridOffset(col, s.Cols, d.StepW)
			oy := gridOffset(row, s.Rows, d.StepH)

			p := PanePolygon{Col: col, Row: row}
			for i, c := range corners {
				rx, ry := rotate(c[0]+ox, c[1]+oy, s.RotationDeg)
				p.Corners[i] = astro.PlaneToSky(-rx, ry, center.RAdeg, center.DecDeg)
			}
			panes = append(panes, p)
		}
	}
	return panes
}

// DefaultMargin is the safety factor applied by RequiredFOV when the
// caller passes a non-positive margin.
const DefaultMargin = 1.06

// RequiredFOV returns the viewport field-of-view width, in degrees, needed
// so a panelW x panelH rectangle rotated by rotationDeg fits a viewport of
// the given aspect ratio (width/height) with a safety margin.
// Returns NaN when either dimension is non-finite or non-positive.
func RequiredFOV(panelW, panelH, rotationDeg, aspectRatio, margin float64) float64 {
	if math.IsNaN(panelW) || math.IsInf(panelW, 0) || panelW <= 0 ||
		math.IsNaN(panelH) || math.IsInf(panelH, 0) || panelH <= 0 {
		return math.NaN()
	}
	if margin <= 0 {
		margin = DefaultMargin
	}

	theta := rotationDeg * math.Pi / 180
	neededW := math.Abs(panelW*math.Cos(theta)) + math.Abs(panelH*math.Sin(theta))
	neededH := math.Abs(panelW*math.Sin(theta)) + math.Abs(panelH*math.Cos(theta))

	return math.Max(neededW*margin, neededH*margin*aspectRatio)
}
