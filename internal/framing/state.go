// Package framing serializes framing-assistant state to and from
// share-link query strings.
package framing

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/litescript/ls-framing/internal/astro"
)

// State is the complete framing-assistant state carried by a share link.
type State struct {
	RigID       string
	RAdeg       float64
	DecDeg      float64
	RotationDeg float64
	Survey      string

	Cols       int
	Rows       int
	OverlapPct float64

	// Image adjustment sliders; zero values mean "unset" and are
	// omitted from the query string.
	Stretch float64
	Gamma   float64
}

// DefaultState returns a single-panel state centered on the origin.
func DefaultState() State {
	return State{Cols: 1, Rows: 1, OverlapPct: 20}
}

// Center returns the target center as a sky point.
func (s State) Center() astro.SkyPoint {
	return astro.SkyPoint{RAdeg: s.RAdeg, DecDeg: s.DecDeg}
}

// Query parameter keys. These are the wire format of share links and must
// not change without a migration path for existing links.
const (
	keyRig     = "rig"
	keyRA      = "ra"
	keyDec     = "dec"
	keyRot     = "rot"
	keySurvey  = "survey"
	keyCols    = "cols"
	keyRows    = "rows"
	keyOverlap = "overlap"
	keyStretch = "stretch"
	keyGamma   = "gamma"
)

// BuildQuery encodes a state as query parameters. RA/Dec are written at
// 6 decimal places and rotation at integer degrees; optional fields are
// omitted when zero-valued.
func BuildQuery(s State) url.Values {
	v := url.Values{}

	v.Set(keyRA, strconv.FormatFloat(s.RAdeg, 'f', 6, 64))
	v.Set(keyDec, strconv.FormatFloat(s.DecDeg, 'f', 6, 64))
	v.Set(keyRot, strconv.Itoa(int(math.Round(s.RotationDeg))))

	if s.RigID != "" {
		v.Set(keyRig, s.RigID)
	}
	if s.Survey != "" {
		v.Set(keySurvey, s.Survey)
	}
	if s.Cols > 1 || s.Rows > 1 {
		v.Set(keyCols, strconv.Itoa(s.Cols))
		v.Set(keyRows, strconv.Itoa(s.Rows))
		v.Set(keyOverlap, strconv.FormatFloat(s.OverlapPct, 'f', -1, 64))
	}
	if s.Stretch != 0 {
		v.Set(keyStretch, strconv.FormatFloat(s.Stretch, 'f', -1, 64))
	}
	if s.Gamma != 0 {
		v.Set(keyGamma, strconv.FormatFloat(s.Gamma, 'f', -1, 64))
	}

	return v
}

// ParseQuery decodes a state from query parameters. Unknown keys are
// ignored; malformed numeric values leave the corresponding field at its
// default. An error is returned only for an unparseable query string.
func ParseQuery(rawQuery string) (State, error) {
	v, err := url.ParseQuery(rawQuery)
	if err != nil {
		return State{}, fmt.Errorf("parse framing query: %w", err)
	}
	return FromValues(v), nil
}

// FromValues decodes a state from already-parsed query parameters.
func FromValues(v url.Values) State {
	s := DefaultState()

	s.RigID = v.Get(keyRig)
	s.Survey = v.Get(keySurvey)

	if f, err := strconv.ParseFloat(v.Get(keyRA), 64); err == nil {
		s.RAdeg = astro.NormalizeAngle(f)
	}
	if f, err := strconv.ParseFloat(v.Get(keyDec), 64); err == nil && f >= -90 && f <= 90 {
		s.DecDeg = f
	}
	if f, err := strconv.ParseFloat(v.Get(keyRot), 64); err == nil && astro.IsValidRotation(f) {
		s.RotationDeg = f
	}
	if n, err := strconv.Atoi(v.Get(keyCols)); err == nil && n >= 1 {
		s.Cols = n
	}
	if n, err := strconv.Atoi(v.Get(keyRows)); err == nil && n >= 1 {
		s.Rows = n
	}
	if f, err := strconv.ParseFloat(v.Get(keyOverlap), 64); err == nil && f >= 0 && f < 100 {
		s.OverlapPct = f
	}
	if f, err := strconv.ParseFloat(v.Get(keyStretch), 64); err == nil {
		s.Stretch = f
	}
	if f, err := strconv.ParseFloat(v.Get(keyGamma), 64); err == nil {
		s.Gamma = f
	}

	return s
}
