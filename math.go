package astrokit

import (
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

const (
	deg2rad = math.Pi / 180
)

// Norm returns the norm of a given vector which is supposed to be 3x1.
func Norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// NormSquared returns the squared norm, skipping the square root.
func NormSquared(v []float64) float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Unit returns the unit vector of a given vector.
func Unit(a []float64) (b []float64) {
	n := Norm(a)
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		return []float64{0, 0, 0}
	}
	b = make([]float64, len(a))
	for i, val := range a {
		b[i] = val / n
	}
	return
}

// Dot performs the inner product via mat64/BLAS.
func Dot(a, b []float64) float64 {
	return mat64.Dot(mat64.NewVector(len(a), a), mat64.NewVector(len(b), b))
}

// Cross performs the cross product.
func Cross(a, b []float64) []float64 {
	return []float64{a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0]}
}

// Add returns the sum of two 3x1 vectors.
func Add(a, b []float64) []float64 {
	return []float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns the difference of two 3x1 vectors.
func Sub(a, b []float64) []float64 {
	return []float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale returns the vector scaled by the given factor.
func Scale(s float64, a []float64) []float64 {
	return []float64{s * a[0], s * a[1], s * a[2]}
}

// Spherical2Cartesian returns the unit direction vector for the given
// longitude and latitude, both in radians.
func Spherical2Cartesian(lon, lat float64) (b []float64) {
	b = make([]float64, 3)
	sLat, cLat := math.Sincos(lat)
	sLon, cLon := math.Sincos(lon)
	b[0] = cLat * cLon
	b[1] = cLat * sLon
	b[2] = sLat
	return
}

// Cartesian2Spherical returns the longitude in [0, 2π) and the latitude in
// [-π/2, π/2] of the provided vector, both in radians.
func Cartesian2Spherical(a []float64) (lon, lat float64) {
	lat = math.Atan2(a[2], math.Hypot(a[0], a[1]))
	lon = math.Atan2(a[1], a[0])
	if lon < 0 {
		lon += 2 * math.Pi
	}
	lon = math.Mod(lon, 2*math.Pi)
	return
}

// RADec2Cartesian returns the Cartesian position of the given right ascension
// and declination (degrees) at the provided distance. Pass a distance of 1 for
// a unit direction vector.
func RADec2Cartesian(raDeg, decDeg, distance float64) []float64 {
	sDec, cDec := math.Sincos(decDeg * deg2rad)
	sRA, cRA := math.Sincos(raDeg * deg2rad)
	return []float64{distance * cDec * cRA, distance * cDec * sRA, distance * sDec}
}

// AngularSeparation returns the great-circle separation between two sky
// positions via the haversine formula. All angles in degrees. NaN inputs
// propagate to a NaN separation.
func AngularSeparation(ra1Deg, dec1Deg, ra2Deg, dec2Deg float64) float64 {
	ra1 := ra1Deg * deg2rad
	dec1 := dec1Deg * deg2rad
	ra2 := ra2Deg * deg2rad
	dec2 := dec2Deg * deg2rad
	sdDec := math.Sin((dec2 - dec1) / 2)
	sdRA := math.Sin((ra2 - ra1) / 2)
	a := sdDec*sdDec + math.Cos(dec1)*math.Cos(dec2)*sdRA*sdRA
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)) / deg2rad
}

// Deg2rad converts degrees to radians, and enforces only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforces only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}
