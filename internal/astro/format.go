package astro

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// raToHMS splits an RA in degrees into hours, minutes, and seconds, with
// the seconds rounded to the given number of decimal places. Rounding
// carries through minutes and hours, wrapping at 24h.
func raToHMS(raDeg float64, secDecimals int) (h, m int, s float64) {
	scale := math.Pow10(secDecimals)
	totalSec := math.Round(NormalizeAngle(raDeg)/15*3600*scale) / scale
	if totalSec >= 86400 {
		totalSec -= 86400
	}

	h = int(totalSec / 3600)
	totalSec -= float64(h) * 3600
	m = int(totalSec / 60)
	s = totalSec - float64(m)*60
	return h, m, s
}

// decToDMS splits a declination in degrees into sign, degrees, minutes, and
// seconds rounded to the given number of decimal places. The sign is taken
// from the numeric sign of the input, so -0.5° splits as negative.
func decToDMS(decDeg float64, secDecimals int) (neg bool, d, m int, s float64) {
	neg = math.Signbit(decDeg)

	scale := math.Pow10(secDecimals)
	totalSec := math.Round(math.Abs(decDeg)*3600*scale) / scale

	d = int(totalSec / 3600)
	totalSec -= float64(d) * 3600
	m = int(totalSec / 60)
	s = totalSec - float64(m)*60
	return neg, d, m, s
}

func decSign(neg bool) string {
	if neg {
		return "-"
	}
	return "+"
}

// FormatRAHMS formats an RA in degrees as e.g. "12h 34m 56.7s".
func FormatRAHMS(raDeg float64) string {
	h, m, s := raToHMS(raDeg, 1)
	return fmt.Sprintf("%dh %dm %.1fs", h, m, s)
}

// FormatDecDM formats a declination in degrees as e.g. "-45° 30'",
// rounded to whole arcminutes.
func FormatDecDM(decDeg float64) string {
	neg := math.Signbit(decDeg)
	totalMin := int(math.Round(math.Abs(decDeg) * 60))
	return fmt.Sprintf("%s%d° %d'", decSign(neg), totalMin/60, totalMin%60)
}

// FormatDecDMS formats a declination in degrees as e.g. "-45° 30' 15\"",
// rounded to whole arcseconds.
func FormatDecDMS(decDeg float64) string {
	neg, d, m, s := decToDMS(decDeg, 0)
	return fmt.Sprintf("%s%d° %d' %.0f\"", decSign(neg), d, m, s)
}

// FormatRAColumns formats an RA for CSV export as space-separated,
// zero-padded "HH MM SS" with integer seconds.
func FormatRAColumns(raDeg float64) string {
	h, m, s := raToHMS(raDeg, 0)
	return fmt.Sprintf("%02d %02d %02.0f", h, m, s)
}

// FormatDecColumns formats a declination for CSV export as signed,
// zero-padded "±DD MM SS" with integer seconds.
func FormatDecColumns(decDeg float64) string {
	neg, d, m, s := decToDMS(decDeg, 0)
	return fmt.Sprintf("%s%02d %02d %02.0f", decSign(neg), d, m, s)
}

// FormatRAHourMark formats an RA in the hour-marked convention used by the
// ASIAIR import format, e.g. `12hr 34' 56"`.
func FormatRAHourMark(raDeg float64) string {
	h, m, s := raToHMS(raDeg, 0)
	return fmt.Sprintf("%02dhr %02d' %02.0f\"", h, m, s)
}

// FormatDecDegMark formats a declination in the degree-marked convention
// used by the ASIAIR import format, e.g. `+45° 30' 00"`.
func FormatDecDegMark(decDeg float64) string {
	neg, d, m, s := decToDMS(decDeg, 0)
	return fmt.Sprintf("%s%02d° %02d' %02.0f\"", decSign(neg), d, m, s)
}

// IsValidCoordinate reports whether ra/dec form a normalized equatorial
// coordinate: finite, 0 ≤ ra < 360, -90 ≤ dec ≤ +90.
func IsValidCoordinate(raDeg, decDeg float64) bool {
	if math.IsNaN(raDeg) || math.IsInf(raDeg, 0) ||
		math.IsNaN(decDeg) || math.IsInf(decDeg, 0) {
		return false
	}
	return raDeg >= 0 && raDeg < 360 && decDeg >= -90 && decDeg <= 90
}

// IsValidFOV reports whether a field-of-view width in degrees is usable.
func IsValidFOV(fovDeg float64) bool {
	if math.IsNaN(fovDeg) || math.IsInf(fovDeg, 0) {
		return false
	}
	return fovDeg > 0 && fovDeg <= 180
}

// IsValidRotation reports whether a rotation angle in degrees is usable.
func IsValidRotation(rotDeg float64) bool {
	if math.IsNaN(rotDeg) || math.IsInf(rotDeg, 0) {
		return false
	}
	return rotDeg >= -360 && rotDeg <= 360
}

// sexagesimalFields strips unit markers from a sexagesimal string and
// returns the numeric fields.
func sexagesimalFields(s string) []string {
	repl := strings.NewReplacer(
		"hr", " ", "h", " ", "m", " ", "s", " ",
		"°", " ", "d", " ", "'", " ", "\"", " ", ":", " ",
	)
	return strings.Fields(repl.Replace(strings.TrimSpace(s)))
}

// ParseRA parses an RA given as decimal degrees ("187.5") or sexagesimal
// hours ("12h 30m", "12 30 00"). The result is normalized to [0, 360).
func ParseRA(s string) (float64, error) {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return NormalizeAngle(v), nil
	}

	fields := sexagesimalFields(strings.ToLower(s))
	if len(fields) == 0 || len(fields) > 3 {
		return 0, fmt.Errorf("invalid RA %q", s)
	}

	var hours float64
	div := 1.0
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid RA %q", s)
		}
		hours += v / div
		div *= 60
	}
	return NormalizeAngle(RAHoursToDeg(hours)), nil
}

// ParseDec parses a declination given as decimal degrees ("-45.5") or
// sexagesimal ("-45 30", "-45° 30' 15\"").
func ParseDec(s string) (float64, error) {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		if v < -90 || v > 90 {
			return 0, fmt.Errorf("declination %q out of range", s)
		}
		return v, nil
	}

	trimmed := strings.TrimSpace(strings.ToLower(s))
	neg := strings.HasPrefix(trimmed, "-")
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "-"), "+")

	fields := sexagesimalFields(trimmed)
	if len(fields) == 0 || len(fields) > 3 {
		return 0, fmt.Errorf("invalid declination %q", s)
	}

	var deg float64
	div := 1.0
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid declination %q", s)
		}
		deg += v / div
		div *= 60
	}
	if neg {
		deg = -deg
	}
	if deg < -90 || deg > 90 {
		return 0, fmt.Errorf("declination %q out of range", s)
	}
	return deg, nil
}
