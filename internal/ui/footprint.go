package ui

import (
	"math"
	"strings"

	"github.com/litescript/ls-framing/internal/astro"
	"github.com/litescript/ls-framing/internal/mosaic"
)

const (
	glyphCorner = '+'
	glyphEdge   = '·'
	glyphCenter = '✛'

	// Terminal cells are roughly twice as tall as wide; one row spans
	// twice the angle of one column so the footprint keeps its shape.
	cellAspect = 2.0
)

// renderFootprint draws the mosaic pane outlines on a character grid by
// projecting pane corners onto the tangent plane at the mosaic center.
// RA increases to the left, matching sky-chart convention.
func renderFootprint(spec mosaic.Spec, center astro.SkyPoint, gridW, gridH int) string {
	dims := mosaic.Dimensions(spec.PanelWDeg, spec.PanelHDeg, spec.Cols, spec.Rows, spec.OverlapPct)

	aspect := float64(gridW) / (cellAspect * float64(gridH))
	fovW := mosaic.RequiredFOV(dims.TotalW, dims.TotalH, spec.RotationDeg, aspect, 0)
	if math.IsNaN(fovW) || fovW <= 0 {
		return ""
	}
	fovH := fovW / aspect

	cells := make([][]rune, gridH)
	for i := range cells {
		cells[i] = make([]rune, gridW)
		for j := range cells[i] {
			cells[i][j] = ' '
		}
	}

	plot := func(x, y float64, glyph rune) {
		// x east, y north in degrees; east renders left.
		col := int(math.Round((0.5 - x/fovW) * float64(gridW-1)))
		row := int(math.Round((0.5 - y/fovH) * float64(gridH-1)))
		if col < 0 || col >= gridW || row < 0 || row >= gridH {
			return
		}
		// Corners win over edges.
		if cells[row][col] == glyphCorner && glyph == glyphEdge {
			return
		}
		cells[row][col] = glyph
	}

	for _, pane := range mosaic.PanesGnomonic(spec, center) {
		var pts [4][2]float64
		visible := true
		for i, c := range pane.Corners {
			p, ok := astro.SkyToPlane(c.RAdeg, c.DecDeg, center.RAdeg, center.DecDeg)
			if !ok {
				visible = false
				break
			}
			pts[i] = [2]float64{p.X, p.Y}
		}
		if !visible {
			continue
		}

		// Edges first so corners overwrite them.
		for i := 0; i < 4; i++ {
			a, b := pts[i], pts[(i+1)%4]
			steps := gridW
			for s := 1; s < steps; s++ {
				f := float64(s) / float64(steps)
				plot(a[0]+(b[0]-a[0])*f, a[1]+(b[1]-a[1])*f, glyphEdge)
			}
		}
		for _, p := range pts {
			plot(p[0], p[1], glyphCorner)
		}
	}

	plot(0, 0, glyphCenter)

	var b strings.Builder
	for _, row := range cells {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
