package astro

import (
	"math"
	"time"
)

// J2000 is the Julian Date of the J2000.0 reference epoch.
const J2000 = 2451545.0

// JulianDate calculates the Julian Date for a given time.
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	// Time of day as fraction
	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// January/February count as months 13/14 of the previous year
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

// precessionMatrix returns the rotation matrix from the J2000 mean equator
// and equinox to the mean equator and equinox of the given Julian Date,
// using the IAU three-angle (zeta, z, theta) formulation.
// Rows index the output frame, columns the input frame.
func precessionMatrix(jd float64) [3][3]float64 {
	// Julian centuries since J2000.0
	T := (jd - J2000) / 36525.0

	// Precession angles in arcseconds (IAU 1976 polynomials)
	arcsec := math.Pi / (180 * 3600)
	zeta := (2306.2181*T + 0.30188*T*T + 0.017998*T*T*T) * arcsec
	z := (2306.2181*T + 1.09468*T*T + 0.018203*T*T*T) * arcsec
	theta := (2004.3109*T - 0.42665*T*T - 0.041833*T*T*T) * arcsec

	cz, sz := math.Cos(zeta), math.Sin(zeta)
	cZ, sZ := math.Cos(z), math.Sin(z)
	ct, st := math.Cos(theta), math.Sin(theta)

	// Rz(-z) * Ry(theta) * Rz(-zeta)
	return [3][3]float64{
		{cz*ct*cZ - sz*sZ, -sz*ct*cZ - cz*sZ, -st * cZ},
		{cz*ct*sZ + sz*cZ, -sz*ct*sZ + cz*cZ, -st * sZ},
		{cz * st, -sz * st, ct},
	}
}

// applyMatrix multiplies a 3x3 matrix by a vector.
func applyMatrix(m [3][3]float64, v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// applyTranspose multiplies the transpose of a 3x3 rotation matrix by a
// vector, giving the inverse rotation.
func applyTranspose(m [3][3]float64, v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z,
		Y: m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z,
		Z: m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z,
	}
}

// J2000ToJNow converts a J2000 sky point to the mean equinox of the given
// instant. The instant is an explicit parameter so results are reproducible;
// callers wanting "now" pass time.Now().
func J2000ToJNow(p SkyPoint, t time.Time) SkyPoint {
	m := precessionMatrix(JulianDate(t))
	return vectorToSky(applyMatrix(m, unitVector(p.RAdeg, p.DecDeg)))
}

// JNowToJ2000 converts a sky point at the mean equinox of the given instant
// back to the J2000 frame. Exact inverse of J2000ToJNow at the same instant.
func JNowToJ2000(p SkyPoint, t time.Time) SkyPoint {
	m := precessionMatrix(JulianDate(t))
	return vectorToSky(applyTranspose(m, unitVector(p.RAdeg, p.DecDeg)))
}
