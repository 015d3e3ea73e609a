// Package export writes mosaic plans in the import formats of external
// planning and mount-control tools, and as human-readable tables.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-framing/internal/astro"
	"github.com/litescript/ls-framing/internal/mosaic"
)

// WritePanesColumns writes pane centers in the space-separated sexagesimal
// CSV layout read by N.I.N.A. and Telescopius imports: `HH MM SS` RA and
// `±DD MM SS` Dec, integer seconds. The layout is consumed by external
// software and must not change.
func WritePanesColumns(w io.Writer, panes []mosaic.Pane) error {
	if _, err := fmt.Fprintln(w, "Pane,RA,Dec"); err != nil {
		return err
	}

	for i, p := range panes {
		_, err := fmt.Fprintf(w, "%d,%s,%s\n",
			i+1,
			astro.FormatRAColumns(p.Center.RAdeg),
			astro.FormatDecColumns(p.Center.DecDeg),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WritePanesMarked writes pane centers in the unit-marked layout read by
// the ASIAIR plan import: `HHhr MM' SS"` RA and `±DD° MM' SS"` Dec,
// precessed to the mean equinox of the given instant. The layout is
// consumed by external software and must not change.
func WritePanesMarked(w io.Writer, panes []mosaic.Pane, at time.Time) error {
	if _, err := fmt.Fprintln(w, "Index,RA(JNow),Dec(JNow)"); err != nil {
		return err
	}

	for i, p := range panes {
		now := astro.J2000ToJNow(p.Center, at)
		_, err := fmt.Fprintf(w, "%d,%s,%s\n",
			i+1,
			astro.FormatRAHourMark(now.RAdeg),
			astro.FormatDecDegMark(now.DecDeg),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WritePlanTable writes a human-readable mosaic plan to the given writer.
func WritePlanTable(w io.Writer, spec mosaic.Spec, center astro.SkyPoint, panes []mosaic.Pane) {
	dims := mosaic.Dimensions(spec.PanelWDeg, spec.PanelHDeg, spec.Cols, spec.Rows, spec.OverlapPct)

	fmt.Fprintf(w, "Mosaic plan @ %s %s\n",
		astro.FormatRAHMS(center.RAdeg), astro.FormatDecDM(center.DecDeg))
	fmt.Fprintf(w, "%dx%d panes, %.2f° x %.2f° each, %.0f%% overlap, rotation %.0f°\n",
		spec.Cols, spec.Rows, spec.PanelWDeg, spec.PanelHDeg, spec.OverlapPct, spec.RotationDeg)
	fmt.Fprintf(w, "Total field %.2f° x %.2f°\n", dims.TotalW, dims.TotalH)
	fmt.Fprintln(w, strings.Repeat("─", 46))

	fmt.Fprintf(w, "%-6s %-4s %-4s %-14s %-12s\n", "Pane", "Col", "Row", "RA", "Dec")
	fmt.Fprintln(w, strings.Repeat("─", 46))

	for i, p := range panes {
		fmt.Fprintf(w, "%-6d %-4d %-4d %-14s %-12s\n",
			i+1, p.Col, p.Row,
			astro.FormatRAHMS(p.Center.RAdeg),
			astro.FormatDecDM(p.Center.DecDeg),
		)
	}
}
