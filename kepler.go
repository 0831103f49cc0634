package astrokit

import "math"

const (
	keplerMaxIter = 50
	keplerε       = 1e-12
)

// SolveKepler returns the eccentric anomaly E satisfying Kepler's equation
// M = E - e·sin(E) via Newton-Raphson iteration seeded at E = M, or at E = π
// for high eccentricities where the flat derivative near periapsis makes the
// M seed overshoot. Valid for elliptical orbits (e in [0, 1)); hyperbolic and
// parabolic orbits are not supported.
func SolveKepler(meanAnomaly, e float64) float64 {
	E := meanAnomaly
	if e >= 0.8 {
		E = math.Pi
	}
	for iter := 0; iter < keplerMaxIter; iter++ {
		sinE, cosE := math.Sincos(E)
		ΔE := (E - e*sinE - meanAnomaly) / (1 - e*cosE)
		E -= ΔE
		if math.Abs(ΔE) < keplerε {
			return E
		}
	}
	keplerIterationCap.Inc()
	return E
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly ν.
func TrueAnomaly(E, e float64) float64 {
	sE2, cE2 := math.Sincos(E / 2)
	return 2 * math.Atan2(math.Sqrt(1+e)*sE2, math.Sqrt(1-e)*cE2)
}
