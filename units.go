package astrokit

import (
	"fmt"
	"sort"
	"strings"
)

// Physical constants, SI units.
const (
	// G is the gravitational constant in m³/(kg·s²).
	G = 6.674e-11
	// SpeedOfLight in m/s.
	SpeedOfLight = 299792458.0
	// StefanBoltzmann constant in W/(m²·K⁴).
	StefanBoltzmann = 5.670374419e-8

	// AU is one astronomical unit in meters.
	AU = 1.496e11
	// Parsec in meters.
	Parsec = 3.0857e16
	// LightYear in meters.
	LightYear = 9.4607e15

	// SolarMass in kg.
	SolarMass = 1.989e30
	// SolarRadius in meters.
	SolarRadius = 6.957e8
	// SolarLuminosity in watts.
	SolarLuminosity = 3.828e26

	// EarthMass in kg.
	EarthMass = 5.972e24
	// EarthRadius in meters.
	EarthRadius = 6.371e6
	// JupiterMass in kg.
	JupiterMass = 1.898e27
	// JupiterRadius in meters.
	JupiterRadius = 6.9911e7
	// NeptuneMass in kg.
	NeptuneMass = 1.024e26
	// NeptuneRadius in meters.
	NeptuneRadius = 2.4622e7

	// JulianYear in seconds (365.25 days).
	JulianYear = 365.25 * 86400
)

// UnknownUnitError is returned for a unit name outside the fixed vocabulary
// of its quantity.
type UnknownUnitError struct {
	Unit     string
	Quantity string
	Valid    []string
}

func (e UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown %s unit '%s' (valid units: %s)", e.Quantity, e.Unit, strings.Join(e.Valid, ", "))
}

var lengthUnits = map[string]float64{
	"m":  1,
	"km": 1e3,
	"au": AU,
	"ly": LightYear,
	"pc": Parsec,
}

var massUnits = map[string]float64{
	"kg":        1,
	"m_sun":     SolarMass,
	"m_earth":   EarthMass,
	"m_jupiter": JupiterMass,
}

var timeUnits = map[string]float64{
	"s":   1,
	"min": 60,
	"h":   3600,
	"d":   86400,
	"yr":  JulianYear,
	"myr": 1e6 * JulianYear,
	"gyr": 1e9 * JulianYear,
}

func convertUnit(value float64, unit, quantity string, table map[string]float64) (float64, error) {
	factor, found := table[strings.ToLower(unit)]
	if !found {
		valid := make([]string, 0, len(table))
		for name := range table {
			valid = append(valid, name)
		}
		sort.Strings(valid)
		return 0, UnknownUnitError{Unit: unit, Quantity: quantity, Valid: valid}
	}
	return value * factor, nil
}

// LengthInMeters converts the value in the named length unit to meters.
// Unit names are case-insensitive.
func LengthInMeters(value float64, unit string) (float64, error) {
	return convertUnit(value, unit, "length", lengthUnits)
}

// MassInKg converts the value in the named mass unit to kilograms.
// Unit names are case-insensitive.
func MassInKg(value float64, unit string) (float64, error) {
	return convertUnit(value, unit, "mass", massUnits)
}

// TimeInSeconds converts the value in the named time unit to seconds.
// Unit names are case-insensitive.
func TimeInSeconds(value float64, unit string) (float64, error) {
	return convertUnit(value, unit, "time", timeUnits)
}
