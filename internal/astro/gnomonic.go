package astro

import (
	"math"
)

// Vec3 represents a 3D unit-sphere vector in the equatorial frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// unitVector converts RA/Dec in degrees to an equatorial unit vector.
func unitVector(raDeg, decDeg float64) Vec3 {
	ra := degToRad(raDeg)
	dec := degToRad(decDeg)
	return Vec3{
		X: math.Cos(dec) * math.Cos(ra),
		Y: math.Cos(dec) * math.Sin(ra),
		Z: math.Sin(dec),
	}
}

// vectorToSky converts an equatorial unit vector back to RA/Dec degrees.
// RA is normalized to [0, 360); Dec falls naturally in [-90, +90].
func vectorToSky(v Vec3) SkyPoint {
	return SkyPoint{
		RAdeg:  NormalizeAngle(radToDeg(math.Atan2(v.Y, v.X))),
		DecDeg: radToDeg(math.Asin(v.Z)),
	}
}

// tangentBasis returns the local east and north unit vectors at a sky point.
// Together with the center vector they form the orthonormal frame used to
// parameterize small angular offsets.
func tangentBasis(raDeg, decDeg float64) (east, north Vec3) {
	ra := degToRad(raDeg)
	dec := degToRad(decDeg)
	east = Vec3{X: -math.Sin(ra), Y: math.Cos(ra), Z: 0}
	north = Vec3{
		X: -math.Sin(dec) * math.Cos(ra),
		Y: -math.Sin(dec) * math.Sin(ra),
		Z: math.Cos(dec),
	}
	return east, north
}

// degenerateOffset is the offset magnitude below which PlaneToSky returns
// the projection center directly, avoiding division by zero when
// normalizing the offset direction.
const degenerateOffset = 1e-12

// PlaneToSky converts a tangent-plane offset (degrees) at the given
// projection center to a sky coordinate. The offset magnitude is the
// great-circle angular radius; the direction is the unit combination of
// the east/north basis vectors weighted by x and y.
func PlaneToSky(xDeg, yDeg, ra0Deg, dec0Deg float64) SkyPoint {
	r := math.Hypot(xDeg, yDeg)
	if r < degenerateOffset {
		return SkyPoint{RAdeg: NormalizeAngle(ra0Deg), DecDeg: dec0Deg}
	}

	center := unitVector(ra0Deg, dec0Deg)
	east, north := tangentBasis(ra0Deg, dec0Deg)

	// Unit direction in the tangent plane.
	dir := east.Scale(xDeg / r).Add(north.Scale(yDeg / r))

	// Rotate the center vector toward dir by the angular radius.
	rRad := degToRad(r)
	v := center.Scale(math.Cos(rRad)).Add(dir.Scale(math.Sin(rRad)))

	return vectorToSky(v)
}

// SkyToPlane converts a sky coordinate to a tangent-plane offset (degrees)
// at the given projection center. The second return value is false when the
// target lies 90° or more from the center and has no finite planar
// representation; callers must treat that as "unrepresentable", not retry.
func SkyToPlane(raDeg, decDeg, ra0Deg, dec0Deg float64) (PlanePoint, bool) {
	dra := degToRad(raDeg - ra0Deg)
	dec := degToRad(decDeg)
	dec0 := degToRad(dec0Deg)

	// Spherical law of cosines: angular separation from the center.
	cosC := math.Sin(dec0)*math.Sin(dec) + math.Cos(dec0)*math.Cos(dec)*math.Cos(dra)
	if cosC <= 0 {
		return PlanePoint{}, false
	}

	// Tangent-plane direction components; their magnitude is sin(c).
	ex := math.Cos(dec) * math.Sin(dra)
	ey := math.Cos(dec0)*math.Sin(dec) - math.Sin(dec0)*math.Cos(dec)*math.Cos(dra)

	sinC := math.Hypot(ex, ey)
	if sinC < degenerateOffset {
		return PlanePoint{}, true
	}

	// Scale the direction so the offset magnitude equals the angular
	// separation, the exact inverse of PlaneToSky.
	c := math.Atan2(sinC, cosC)
	scale := radToDeg(c) / sinC
	return PlanePoint{X: ex * scale, Y: ey * scale}, true
}
