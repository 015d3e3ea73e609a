// Command ls-framing is a mosaic framing assistant for deep-sky imaging:
// it lays out mosaic panes around a target, exports them in mount-control
// import formats, and offers an interactive terminal adjuster.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/litescript/ls-framing/internal/astro"
	"github.com/litescript/ls-framing/internal/export"
	"github.com/litescript/ls-framing/internal/framing"
	"github.com/litescript/ls-framing/internal/mosaic"
	"github.com/litescript/ls-framing/internal/rig"
	"github.com/litescript/ls-framing/internal/ui"
)

// CLI flags
var (
	raFlag    string
	decFlag   string
	queryFlag string

	rigFlag  string
	rigsPath string
	panelW   float64
	panelH   float64

	cols     int
	rows     int
	overlap  float64
	rotation float64

	planMode   bool
	exportMode string
	outPath    string
	jnowMode   bool
	linkMode   bool
)

func main() {
	flag.StringVar(&raFlag, "ra", "", "Target RA (decimal degrees or sexagesimal hours, e.g. '5h 35m 17s')")
	flag.StringVar(&decFlag, "dec", "", "Target Dec (decimal degrees or sexagesimal, e.g. '-5 23 28')")
	flag.StringVar(&queryFlag, "query", "", "Restore state from a share-link query string")
	flag.StringVar(&rigFlag, "rig", "", "Rig profile id (see -rigs)")
	flag.StringVar(&rigsPath, "rigs", "", "Path to a TOML rig catalog (default: built-in profiles)")
	flag.Float64Var(&panelW, "panel-w", 2.0, "Panel width in degrees when no rig is selected")
	flag.Float64Var(&panelH, "panel-h", 1.5, "Panel height in degrees when no rig is selected")
	flag.IntVar(&cols, "cols", 1, "Mosaic columns")
	flag.IntVar(&rows, "rows", 1, "Mosaic rows")
	flag.Float64Var(&overlap, "overlap", 20, "Panel overlap in percent (0-100)")
	flag.Float64Var(&rotation, "rotation", 0, "Mosaic rotation in degrees")
	flag.BoolVar(&planMode, "plan", false, "Print the mosaic plan table and exit")
	flag.StringVar(&exportMode, "export", "", "Export pane list: nina or asiair")
	flag.StringVar(&outPath, "o", "-", "Export output path (- for stdout)")
	flag.BoolVar(&jnowMode, "jnow", false, "Print the target precessed to the current equinox and exit")
	flag.BoolVar(&linkMode, "link", false, "Print the share-link query string and exit")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           parseLevel(*logLevel),
	})

	state, err := buildState(logger)
	if err != nil {
		logger.Error("invalid arguments", "err", err)
		os.Exit(1)
	}

	catalog := loadCatalog(logger)
	spec := buildSpec(state, catalog, logger)
	if !spec.Valid() {
		logger.Error("mosaic spec is invalid",
			"panelW", spec.PanelWDeg, "panelH", spec.PanelHDeg,
			"cols", spec.Cols, "rows", spec.Rows, "overlap", spec.OverlapPct)
		os.Exit(1)
	}

	headless := planMode || exportMode != "" || jnowMode || linkMode
	if headless {
		if err := runHeadless(state, spec); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The interactive adjuster needs a terminal; fall back to the plan
	// table when stdout is redirected.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Debug("stdout is not a terminal, printing plan")
		panes := mosaic.PanesSpherical(spec, state.Center())
		export.WritePlanTable(os.Stdout, spec, state.Center(), panes)
		return
	}

	model := ui.New(state, catalog)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// buildState assembles the framing state from -query and/or explicit flags.
// Explicit flags override query-string fields.
func buildState(logger *log.Logger) (framing.State, error) {
	state := framing.DefaultState()

	if queryFlag != "" {
		s, err := framing.ParseQuery(queryFlag)
		if err != nil {
			return framing.State{}, err
		}
		state = s
		logger.Debug("restored state from query", "ra", state.RAdeg, "dec", state.DecDeg)
	}

	if raFlag != "" {
		ra, err := astro.ParseRA(raFlag)
		if err != nil {
			return framing.State{}, err
		}
		state.RAdeg = ra
	}
	if decFlag != "" {
		dec, err := astro.ParseDec(decFlag)
		if err != nil {
			return framing.State{}, err
		}
		state.DecDeg = dec
	}
	if rigFlag != "" {
		state.RigID = rigFlag
	}

	// Grid flags override only when explicitly set.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cols":
			state.Cols = cols
		case "rows":
			state.Rows = rows
		case "overlap":
			state.OverlapPct = overlap
		case "rotation":
			state.RotationDeg = rotation
		}
	})

	if !astro.IsValidCoordinate(state.RAdeg, state.DecDeg) {
		return framing.State{}, fmt.Errorf("target (%v, %v) out of range", state.RAdeg, state.DecDeg)
	}
	return state, nil
}

// loadCatalog returns the rig catalog from -rigs or the built-in set.
func loadCatalog(logger *log.Logger) rig.Catalog {
	if rigsPath == "" {
		return rig.Default()
	}

	c, err := rig.Load(rigsPath)
	if err != nil {
		logger.Warn("falling back to built-in rigs", "err", err)
		return rig.Default()
	}
	return c
}

// buildSpec derives the mosaic spec from the rig profile, or from the
// -panel-w/-panel-h fallback when no rig matches.
func buildSpec(state framing.State, catalog rig.Catalog, logger *log.Logger) mosaic.Spec {
	w, h := panelW, panelH
	if r, ok := catalog.Find(state.RigID); ok {
		w, h = r.PanelFOV()
		logger.Debug("using rig", "id", r.ID, "fovW", w, "fovH", h)
	} else if state.RigID != "" {
		logger.Warn("rig not found, using -panel-w/-panel-h", "id", state.RigID)
	}

	return mosaic.Spec{
		PanelWDeg:   w,
		PanelHDeg:   h,
		Cols:        state.Cols,
		Rows:        state.Rows,
		OverlapPct:  state.OverlapPct,
		RotationDeg: state.RotationDeg,
	}
}

// runHeadless handles all non-interactive output modes.
func runHeadless(state framing.State, spec mosaic.Spec) error {
	if linkMode {
		fmt.Println("?" + framing.BuildQuery(state).Encode())
		return nil
	}

	if jnowMode {
		now := astro.J2000ToJNow(state.Center(), time.Now())
		fmt.Printf("J2000: %s  %s\n",
			astro.FormatRAHMS(state.RAdeg), astro.FormatDecDMS(state.DecDeg))
		fmt.Printf("JNow:  %s  %s\n",
			astro.FormatRAHMS(now.RAdeg), astro.FormatDecDMS(now.DecDeg))
		return nil
	}

	panes := mosaic.PanesSpherical(spec, state.Center())

	if exportMode != "" {
		out, closeFn, err := openOutput(outPath)
		if err != nil {
			return err
		}
		defer closeFn()

		switch exportMode {
		case "nina":
			return export.WritePanesColumns(out, panes)
		case "asiair":
			return export.WritePanesMarked(out, panes, time.Now())
		default:
			return fmt.Errorf("unknown export format %q (want nina or asiair)", exportMode)
		}
	}

	export.WritePlanTable(os.Stdout, spec, state.Center(), panes)
	return nil
}

// openOutput opens the export destination; "-" means stdout.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create export file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func parseLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
