package astrokit

import "math"

// Mag2Flux converts an apparent magnitude to a linear flux for the given
// zero point.
func Mag2Flux(magnitude, zeroPoint float64) float64 {
	return math.Pow(10, (zeroPoint-magnitude)/2.5)
}

// Flux2Mag converts a linear flux to an apparent magnitude for the given
// zero point. A non-positive flux has no magnitude and yields NaN.
func Flux2Mag(flux, zeroPoint float64) float64 {
	if flux <= 0 {
		return math.NaN()
	}
	return -2.5*math.Log10(flux) + zeroPoint
}

// DistanceModulus returns m - M for a distance in parsecs, NaN for a
// non-positive distance.
func DistanceModulus(distancePc float64) float64 {
	if distancePc <= 0 {
		return math.NaN()
	}
	return 5*math.Log10(distancePc) - 5
}

// LuminosityDistance returns the linear Hubble-law luminosity distance in Mpc
// for the given redshift and Hubble constant (km/s/Mpc).
func LuminosityDistance(redshift, h0 float64) float64 {
	return (SpeedOfLight / 1000) * redshift / h0
}

// ComovingDistance returns the comoving distance in Mpc for the given
// redshift and Hubble constant (km/s/Mpc).
func ComovingDistance(redshift, h0 float64) float64 {
	return LuminosityDistance(redshift, h0) / (1 + redshift)
}

// RedshiftToAge returns the approximate age of the universe at the given
// redshift in Gyr, from the Hubble time of the configured Hubble constant.
func RedshiftToAge(redshift float64) float64 {
	h0 := astroConfig().HubbleConstant * 1000 / (1e6 * Parsec) // in 1/s
	hubbleTime := 1 / h0 / (JulianYear * 1e9)                  // in Gyr
	return hubbleTime / (1 + redshift)
}
