package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-framing/internal/astro"
	"github.com/litescript/ls-framing/internal/framing"
	"github.com/litescript/ls-framing/internal/mosaic"
	"github.com/litescript/ls-framing/internal/rig"
)

func testModel() Model {
	st := framing.DefaultState()
	st.RAdeg = 83.822083
	st.DecDeg = -5.391111
	st.RigID = "fsq106-asi2600"

	m := New(st, rig.Default())
	m.now = func() time.Time {
		return time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	}

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return sized.(Model)
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{}
}

func TestView_RendersHeader(t *testing.T) {
	m := testModel()
	out := m.View()

	if !strings.Contains(out, "Center (J2000)") {
		t.Errorf("missing J2000 line:\n%s", out)
	}
	if !strings.Contains(out, "Center (JNow)") {
		t.Errorf("missing JNow line:\n%s", out)
	}
	if !strings.Contains(out, "FSQ-106") {
		t.Errorf("missing rig name:\n%s", out)
	}
}

func TestView_NotReady(t *testing.T) {
	m := New(framing.DefaultState(), rig.Default())
	if got := m.View(); got != "Loading..." {
		t.Errorf("unsized View() = %q", got)
	}
}

func TestUpdate_NudgeKeys(t *testing.T) {
	m := testModel()
	before := m.state.Center()

	next, _ := m.Update(key("left"))
	got := next.(Model).state.Center()

	// Left nudges east: RA increases by 10 arcmin corrected for dec.
	if got.RAdeg <= before.RAdeg {
		t.Errorf("RA after left-nudge = %v, want > %v", got.RAdeg, before.RAdeg)
	}
	if got.DecDeg != before.DecDeg {
		t.Errorf("Dec changed on RA nudge: %v -> %v", before.DecDeg, got.DecDeg)
	}

	next, _ = m.Update(key("up"))
	got = next.(Model).state.Center()
	if got.DecDeg <= before.DecDeg {
		t.Errorf("Dec after up-nudge = %v, want > %v", got.DecDeg, before.DecDeg)
	}
}

func TestUpdate_RotationWraps(t *testing.T) {
	m := testModel()
	m.state.RotationDeg = 358

	next, _ := m.Update(key("r"))
	got := next.(Model).state.RotationDeg
	if got != 3 {
		t.Errorf("rotation = %v, want 3", got)
	}

	m.state.RotationDeg = 2
	next, _ = m.Update(key("R"))
	got = next.(Model).state.RotationDeg
	if got != 357 {
		t.Errorf("rotation = %v, want 357", got)
	}
}

func TestUpdate_GridKeys(t *testing.T) {
	m := testModel()

	next, _ := m.Update(key("c"))
	next, _ = next.(Model).Update(key("v"))
	got := next.(Model)
	if got.state.Cols != 2 || got.state.Rows != 2 {
		t.Errorf("grid = %dx%d, want 2x2", got.state.Cols, got.state.Rows)
	}

	// Lower bound: cannot shrink below 1.
	next, _ = got.Update(key("C"))
	next, _ = next.(Model).Update(key("C"))
	if next.(Model).state.Cols != 1 {
		t.Errorf("cols = %d, want 1", next.(Model).state.Cols)
	}
}

func TestUpdate_OverlapBounds(t *testing.T) {
	m := testModel()
	m.state.OverlapPct = 95

	next, _ := m.Update(key("+"))
	if next.(Model).state.OverlapPct != 95 {
		t.Errorf("overlap pushed past limit: %v", next.(Model).state.OverlapPct)
	}

	m.state.OverlapPct = 0
	next, _ = m.Update(key("-"))
	if next.(Model).state.OverlapPct != 0 {
		t.Errorf("overlap below zero: %v", next.(Model).state.OverlapPct)
	}
}

func TestUpdate_CycleRig(t *testing.T) {
	m := testModel()
	first := m.rig.ID

	next, _ := m.Update(key("tab"))
	got := next.(Model)
	if got.rig.ID == first {
		t.Errorf("rig did not change from %q", first)
	}
	if got.state.RigID != got.rig.ID {
		t.Errorf("state rig %q out of sync with %q", got.state.RigID, got.rig.ID)
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}

func TestRenderFootprint(t *testing.T) {
	spec := mosaic.Spec{PanelWDeg: 2, PanelHDeg: 1.5, Cols: 2, Rows: 2, OverlapPct: 20}
	center := astro.SkyPoint{RAdeg: 180, DecDeg: 0}

	out := renderFootprint(spec, center, 60, 20)
	if out == "" {
		t.Fatal("empty footprint")
	}
	if !strings.ContainsRune(out, glyphCorner) {
		t.Error("footprint has no corners")
	}
	if !strings.ContainsRune(out, glyphCenter) {
		t.Error("footprint has no center mark")
	}
	if got := strings.Count(out, "\n"); got != 20 {
		t.Errorf("footprint rows = %d, want 20", got)
	}
}

func TestRenderFootprint_InvalidSpec(t *testing.T) {
	spec := mosaic.Spec{PanelWDeg: 0, PanelHDeg: 0, Cols: 1, Rows: 1}
	if out := renderFootprint(spec, astro.SkyPoint{}, 60, 20); out != "" {
		t.Errorf("invalid spec rendered %q", out)
	}
}
