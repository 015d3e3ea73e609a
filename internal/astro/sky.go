// Package astro provides celestial coordinate math for mosaic framing:
// angle conversions, tangent-plane projection, equinox precession, and
// sexagesimal formatting.
package astro

import (
	"math"
)

// SkyPoint represents an equatorial coordinate pair.
// RA is in degrees [0, 360), Dec in degrees [-90, +90].
type SkyPoint struct {
	RAdeg  float64
	DecDeg float64
}

// PlanePoint represents a tangent-plane offset from a projection center,
// in degrees. X is the RA-like axis, Y the Dec-like axis.
type PlanePoint struct {
	X float64
	Y float64
}

// NormalizeAngle wraps an angle in degrees into [0, 360).
// Idempotent on already-normalized values; handles negative inputs.
func NormalizeAngle(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ArcminToDeg converts arcminutes to degrees.
func ArcminToDeg(arcmin float64) float64 {
	return arcmin / 60
}

// DegToArcmin converts degrees to arcminutes.
func DegToArcmin(deg float64) float64 {
	return deg * 60
}

// RAHoursToDeg converts right ascension hours to degrees.
func RAHoursToDeg(hours float64) float64 {
	return hours * 15
}

// RADegToHours converts right ascension degrees to hours.
func RADegToHours(deg float64) float64 {
	return deg / 15
}

// poleGuardRad is how close (in radians) the declination may get to ±90°
// before the RA cosine correction is skipped in NudgeCenter.
const poleGuardRad = 0.001

// NudgeCenter shifts a sky point by the given arcminute offsets.
// The RA offset is corrected by 1/cos(dec) so the shift is a true angular
// distance on the sky; within poleGuardRad of the pole the RA component is
// dropped instead of dividing by a vanishing cosine. Dec is clamped to ±90°.
func NudgeCenter(c SkyPoint, dxArcmin, dyArcmin float64) SkyPoint {
	dx := ArcminToDeg(dxArcmin)
	dy := ArcminToDeg(dyArcmin)

	ra := c.RAdeg
	decRad := degToRad(c.DecDeg)
	if math.Pi/2-math.Abs(decRad) > poleGuardRad {
		ra += dx / math.Cos(decRad)
	}

	dec := c.DecDeg + dy
	if dec > 90 {
		dec = 90
	} else if dec < -90 {
		dec = -90
	}

	return SkyPoint{RAdeg: NormalizeAngle(ra), DecDeg: dec}
}
