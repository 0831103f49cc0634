package astrokit

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Elements defines an orbit via its classical Keplerian elements about a
// central body of the given mass. Distances are in meters, angles in radians,
// the epoch is a Julian date. Immutable once constructed; propagation never
// mutates it.
type Elements struct {
	a, e, i, Ω, ω, m0  float64
	epoch, centralMass float64
	Frame              string // reference frame tag, carried as metadata
}

// State is the instantaneous position (m) and velocity (m/s) derived from a
// set of elements at a query time. It is recomputed on every request.
type State struct {
	R []float64
	V []float64
	T float64 // Julian date of the state
}

// NewElements returns the elements for the provided values with angles in
// radians and the epoch as a Julian date.
func NewElements(a, e, i, Ω, ω, M0, epoch, centralMass float64, frame string) Elements {
	return Elements{a, e, i, Ω, ω, M0, epoch, centralMass, frame}
}

// NewElementsAtTime is NewElements with the epoch as a time.Time instead of a
// Julian date.
func NewElementsAtTime(a, e, i, Ω, ω, M0 float64, epoch time.Time, centralMass float64, frame string) Elements {
	return NewElements(a, e, i, Ω, ω, M0, julian.TimeToJD(epoch), centralMass, frame)
}

// Classical returns the six classical elements.
func (o Elements) Classical() (a, e, i, Ω, ω, M0 float64) {
	return o.a, o.e, o.i, o.Ω, o.ω, o.m0
}

// Epoch returns the epoch as a Julian date.
func (o Elements) Epoch() float64 {
	return o.epoch
}

// EpochTime returns the epoch as a time.Time.
func (o Elements) EpochTime() time.Time {
	return julian.JDToTime(o.epoch)
}

// CentralMass returns the mass of the central body in kg.
func (o Elements) CentralMass() float64 {
	return o.centralMass
}

// MeanMotion returns the mean motion n in rad/s.
func (o Elements) MeanMotion() (float64, error) {
	if o.a <= 0 {
		return 0, fmt.Errorf("non-positive semi-major axis %f m", o.a)
	}
	if o.centralMass <= 0 {
		return 0, fmt.Errorf("non-positive central mass %f kg", o.centralMass)
	}
	return math.Sqrt(G * o.centralMass / (o.a * o.a * o.a)), nil
}

// Period returns the orbital period.
func (o Elements) Period() (time.Duration, error) {
	n, err := o.MeanMotion()
	if err != nil {
		return 0, err
	}
	seconds := 2 * math.Pi / n
	// The time package does not trivially handle fractions of a second, so
	// let's compute this in a convoluted way...
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", seconds))
	return duration, nil
}

// MeanAnomalyAt returns the mean anomaly at the provided Julian date,
// normalized to [0, 2π).
func (o Elements) MeanAnomalyAt(jd float64) float64 {
	n, err := o.MeanMotion()
	if err != nil {
		return math.NaN()
	}
	M := math.Mod(o.m0+n*(jd-o.epoch)*86400, 2*math.Pi)
	if M < 0 {
		M += 2 * math.Pi
	}
	return M
}

// Propagate returns the orbital state at the provided Julian date. It is a
// pure function of the elements and the query time: nothing is cached and the
// same inputs always produce the same state. Degenerate elements (a ≤ 0 or
// central mass ≤ 0) return a NaN-filled state rather than an error so that a
// bad row in a batch does not abort the remaining rows.
func Propagate(o Elements, jd float64) State {
	if o.a <= 0 || o.centralMass <= 0 {
		nan := math.NaN()
		return State{R: []float64{nan, nan, nan}, V: []float64{nan, nan, nan}, T: jd}
	}
	propagations.Inc()
	M := o.MeanAnomalyAt(jd)
	E := SolveKepler(M, o.e)
	ν := TrueAnomaly(E, o.e)
	sinν, cosν := math.Sincos(ν)

	r := o.a * (1 - o.e*math.Cos(E))
	// √(μ/p) is h/p for specific angular momentum h = √(μ·a·(1-e²)).
	p := o.a * (1 - o.e*o.e)
	vFac := math.Sqrt(G * o.centralMass / p)

	R := []float64{r * cosν, r * sinν, 0}
	V := []float64{-vFac * sinν, vFac * (o.e + cosν), 0}
	return State{
		R: PQW2ECI(o.i, o.ω, o.Ω, R),
		V: PQW2ECI(o.i, o.ω, o.Ω, V),
		T: jd,
	}
}

// PropagateAt is Propagate with a time.Time query instant.
func PropagateAt(o Elements, dt time.Time) State {
	return Propagate(o, julian.TimeToJD(dt))
}

// String implements the Stringer interface.
func (o Elements) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f M0=%.3f", o.a, o.e, Rad2deg(o.i), Rad2deg(o.Ω), Rad2deg(o.ω), Rad2deg(o.m0))
}
