package astrokit

import (
	"fmt"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// RADec is an equatorial sky position with typed angles.
type RADec struct {
	RA  unit.RA
	Dec unit.Angle
}

// NewRADec returns the sky position for a right ascension and declination in
// degrees.
func NewRADec(raDeg, decDeg float64) RADec {
	return RADec{RA: unit.RAFromDeg(raDeg), Dec: unit.AngleFromDeg(decDeg)}
}

// Cartesian returns the position as a Cartesian vector at the given distance.
func (c RADec) Cartesian(distance float64) []float64 {
	return RADec2Cartesian(c.RA.Deg(), c.Dec.Deg(), distance)
}

// Sep returns the great-circle separation to another sky position.
func (c RADec) Sep(o RADec) unit.Angle {
	return unit.AngleFromDeg(AngularSeparation(c.RA.Deg(), c.Dec.Deg(), o.RA.Deg(), o.Dec.Deg()))
}

// String implements the Stringer interface with sexagesimal RA and Dec.
func (c RADec) String() string {
	return fmt.Sprintf("%v %v", sexa.FmtRA(c.RA), sexa.FmtAngle(c.Dec))
}
