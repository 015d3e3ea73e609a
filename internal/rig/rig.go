// Package rig loads imaging equipment profiles and derives panel
// field-of-view from sensor and optics geometry.
package rig

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed rigs.toml
var defaultRigs []byte

// Rig describes one camera + telescope combination.
type Rig struct {
	ID            string  `toml:"id"`
	Name          string  `toml:"name"`
	SensorWmm     float64 `toml:"sensor_w_mm"`
	SensorHmm     float64 `toml:"sensor_h_mm"`
	PixelSizeUm   float64 `toml:"pixel_size_um"`
	FocalLengthMm float64 `toml:"focal_length_mm"`
	ReducerFactor float64 `toml:"reducer_factor"` // 0 or 1 = no reducer
}

// Catalog is a set of rig profiles.
type Catalog struct {
	Rigs []Rig `toml:"rig"`
}

// Default returns the embedded rig catalog.
func Default() Catalog {
	var c Catalog
	if err := toml.Unmarshal(defaultRigs, &c); err != nil {
		panic(fmt.Sprintf("embedded rig catalog is malformed: %v", err))
	}
	return c
}

// Load reads a rig catalog from a TOML file.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read rig catalog: %w", err)
	}

	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse rig catalog: %w", err)
	}
	return c, nil
}

// Find returns the rig with the given id.
func (c Catalog) Find(id string) (Rig, bool) {
	for _, r := range c.Rigs {
		if r.ID == id {
			return r, true
		}
	}
	return Rig{}, false
}

// Valid reports whether the rig has usable sensor and optics dimensions.
func (r Rig) Valid() bool {
	return r.SensorWmm > 0 && r.SensorHmm > 0 && r.FocalLengthMm > 0 &&
		!math.IsInf(r.SensorWmm, 0) && !math.IsInf(r.SensorHmm, 0) &&
		!math.IsInf(r.FocalLengthMm, 0)
}

// EffectiveFocalLength returns the focal length with any reducer applied.
func (r Rig) EffectiveFocalLength() float64 {
	if r.ReducerFactor > 0 {
		return r.FocalLengthMm * r.ReducerFactor
	}
	return r.FocalLengthMm
}

// PanelFOV returns the panel field of view in degrees:
// fov = 2*atan(sensor / (2*focal)). Returns NaN for an invalid rig.
func (r Rig) PanelFOV() (wDeg, hDeg float64) {
	if !r.Valid() {
		return math.NaN(), math.NaN()
	}

	focal := r.EffectiveFocalLength()
	wDeg = 2 * math.Atan(r.SensorWmm/(2*focal)) * 180 / math.Pi
	hDeg = 2 * math.Atan(r.SensorHmm/(2*focal)) * 180 / math.Pi
	return wDeg, hDeg
}

// PixelScale returns the image scale in arcseconds per pixel,
// or NaN when the pixel size is unset.
func (r Rig) PixelScale() float64 {
	if !r.Valid() || r.PixelSizeUm <= 0 {
		return math.NaN()
	}
	// 206.265 arcsec per radian, per 1000 (um -> mm)
	return r.PixelSizeUm / r.EffectiveFocalLength() * 206.265
}
