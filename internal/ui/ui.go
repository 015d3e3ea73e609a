// Package ui provides the interactive framing adjuster using Bubble Tea.
package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-framing/internal/astro"
	"github.com/litescript/ls-framing/internal/export"
	"github.com/litescript/ls-framing/internal/framing"
	"github.com/litescript/ls-framing/internal/mosaic"
	"github.com/litescript/ls-framing/internal/rig"
	"github.com/litescript/ls-framing/internal/version"
)

const (
	// Nudge step per arrow key press, in arcminutes.
	nudgeStepArcmin = 10.0
	fineStepArcmin  = 1.0

	// Rotation step per key press, in degrees.
	rotationStep = 5.0

	// Overlap step per key press, in percent.
	overlapStep = 5.0
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model is the root Bubble Tea model for the framing adjuster.
type Model struct {
	state   framing.State
	rig     rig.Rig
	hasRig  bool
	catalog rig.Catalog

	width     int
	height    int
	ready     bool
	statusMsg string

	// Injected clock for the JNow readout; nil means time.Now.
	now func() time.Time
}

// New creates a root UI model from an initial framing state.
func New(st framing.State, catalog rig.Catalog) Model {
	m := Model{
		state:   st,
		catalog: catalog,
		now:     time.Now,
	}
	if r, ok := catalog.Find(st.RigID); ok {
		m.rig = r
		m.hasRig = true
	}
	return m
}

// Spec derives the mosaic spec from the current state and rig.
func (m Model) Spec() mosaic.Spec {
	// Fallback panel when no rig is selected.
	panelW, panelH := 2.0, 1.5
	if m.hasRig {
		panelW, panelH = m.rig.PanelFOV()
	}

	return mosaic.Spec{
		PanelWDeg:   panelW,
		PanelHDeg:   panelH,
		Cols:        m.state.Cols,
		Rows:        m.state.Rows,
		OverlapPct:  m.state.OverlapPct,
		RotationDeg: m.state.RotationDeg,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := &m.state

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Nudge the center. Arrow keys move in sky directions: left = east
	// (increasing RA), matching the drag direction of the web viewer.
	case "left":
		m.setCenter(astro.NudgeCenter(st.Center(), nudgeStepArcmin, 0))
	case "right":
		m.setCenter(astro.NudgeCenter(st.Center(), -nudgeStepArcmin, 0))
	case "up":
		m.setCenter(astro.NudgeCenter(st.Center(), 0, nudgeStepArcmin))
	case "down":
		m.setCenter(astro.NudgeCenter(st.Center(), 0, -nudgeStepArcmin))
	case "shift+left":
		m.setCenter(astro.NudgeCenter(st.Center(), fineStepArcmin, 0))
	case "shift+right":
		m.setCenter(astro.NudgeCenter(st.Center(), -fineStepArcmin, 0))
	case "shift+up":
		m.setCenter(astro.NudgeCenter(st.Center(), 0, fineStepArcmin))
	case "shift+down":
		m.setCenter(astro.NudgeCenter(st.Center(), 0, -fineStepArcmin))

	case "r":
		st.RotationDeg = rotWrap(st.RotationDeg + rotationStep)
	case "R":
		st.RotationDeg = rotWrap(st.RotationDeg - rotationStep)

	case "+", "=":
		if st.OverlapPct+overlapStep < 100 {
			st.OverlapPct += overlapStep
		}
	case "-":
		if st.OverlapPct-overlapStep >= 0 {
			st.OverlapPct -= overlapStep
		}

	case "c":
		if st.Cols < 9 {
			st.Cols++
		}
	case "C":
		if st.Cols > 1 {
			st.Cols--
		}
	case "v":
		if st.Rows < 9 {
			st.Rows++
		}
	case "V":
		if st.Rows > 1 {
			st.Rows--
		}

	case "tab":
		m.cycleRig()

	case "e":
		m.statusMsg = m.exportPanes()

	case "y":
		m.statusMsg = "share link: ?" + framing.BuildQuery(m.state).Encode()
	}

	return m, nil
}

func (m *Model) setCenter(p astro.SkyPoint) {
	m.state.RAdeg = p.RAdeg
	m.state.DecDeg = p.DecDeg
}

// cycleRig selects the next rig in the catalog.
func (m *Model) cycleRig() {
	if len(m.catalog.Rigs) == 0 {
		return
	}

	idx := 0
	if m.hasRig {
		for i, r := range m.catalog.Rigs {
			if r.ID == m.rig.ID {
				idx = (i + 1) % len(m.catalog.Rigs)
				break
			}
		}
	}

	m.rig = m.catalog.Rigs[idx]
	m.hasRig = true
	m.state.RigID = m.rig.ID
}

// exportPanes writes the current plan to a CSV file next to the cwd.
func (m Model) exportPanes() string {
	panes := mosaic.PanesSpherical(m.Spec(), m.state.Center())

	name := fmt.Sprintf("mosaic-%dx%d.csv", m.state.Cols, m.state.Rows)
	f, err := os.Create(name)
	if err != nil {
		return "export failed: " + err.Error()
	}
	defer f.Close()

	if err := export.WritePanesColumns(f, panes); err != nil {
		return "export failed: " + err.Error()
	}
	return "wrote " + name
}

// rotWrap wraps a rotation into [0, 360).
func rotWrap(deg float64) float64 {
	return astro.NormalizeAngle(deg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("ls-framing " + version.Version))
	b.WriteString("\n\n")
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	spec := m.Spec()
	panes := mosaic.PanesSpherical(spec, m.state.Center())

	gridW := m.width - 2
	if gridW > 72 {
		gridW = 72
	}
	gridH := m.height - 14
	if gridH > 24 {
		gridH = 24
	}
	if gridW >= 20 && gridH >= 8 {
		b.WriteString(renderFootprint(spec, m.state.Center(), gridW, gridH))
		b.WriteString("\n")
	}

	b.WriteString(m.renderPaneSummary(panes))
	b.WriteString("\n")

	if m.statusMsg != "" {
		b.WriteString(statusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(
		"arrows nudge (shift: fine) · r/R rotate · c/C v/V grid · +/- overlap · tab rig · e export · y link · q quit"))

	return b.String()
}

func (m Model) renderHeader() string {
	c := m.state.Center()
	now := m.now()
	jnow := astro.J2000ToJNow(c, now)

	rigName := "(none)"
	if m.hasRig {
		rigName = m.rig.Name
	}

	spec := m.Spec()
	dims := mosaic.Dimensions(spec.PanelWDeg, spec.PanelHDeg, spec.Cols, spec.Rows, spec.OverlapPct)

	rows := []string{
		labelStyle.Render("Center (J2000) ") + valueStyle.Render(
			astro.FormatRAHMS(c.RAdeg)+"  "+astro.FormatDecDMS(c.DecDeg)),
		labelStyle.Render("Center (JNow)  ") + valueStyle.Render(
			astro.FormatRAHMS(jnow.RAdeg)+"  "+astro.FormatDecDMS(jnow.DecDeg)),
		labelStyle.Render("Rig            ") + valueStyle.Render(rigName),
		labelStyle.Render("Grid           ") + valueStyle.Render(fmt.Sprintf(
			"%dx%d · %.0f%% overlap · rotation %.0f° · field %.2f°x%.2f°",
			spec.Cols, spec.Rows, spec.OverlapPct, spec.RotationDeg, dims.TotalW, dims.TotalH)),
	}
	return strings.Join(rows, "\n") + "\n"
}

func (m Model) renderPaneSummary(panes []mosaic.Pane) string {
	// Keep the pane list short; the CSV export carries the full plan.
	const maxListed = 6

	var b strings.Builder
	for i, p := range panes {
		if i == maxListed {
			fmt.Fprintf(&b, "  … %d more panes\n", len(panes)-maxListed)
			break
		}
		fmt.Fprintf(&b, "  pane %d (c%d r%d)  %s  %s\n",
			i+1, p.Col, p.Row,
			astro.FormatRAHMS(p.Center.RAdeg),
			astro.FormatDecDM(p.Center.DecDeg))
	}
	return b.String()
}
