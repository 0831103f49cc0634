package astrokit

import (
	"math"
)

// BodyClass defines the class of an astronomical body.
type BodyClass uint8

const (
	// ClassMainSequence is a hydrogen-burning main-sequence star.
	ClassMainSequence BodyClass = iota + 1
	// ClassWhiteDwarf is a degenerate stellar remnant.
	ClassWhiteDwarf
	// ClassNeutronStar is a neutron star.
	ClassNeutronStar
	// ClassBrownDwarf is a substellar object below the hydrogen-burning limit.
	ClassBrownDwarf
	// ClassBlackHole is a black hole, sized by its Schwarzschild radius.
	ClassBlackHole
	// ClassRockyPlanet is a terrestrial planet.
	ClassRockyPlanet
	// ClassGasGiant is a Jovian planet.
	ClassGasGiant
	// ClassIceGiant is a Neptunian planet.
	ClassIceGiant
	// ClassAsteroid is a small body defined by radius and density.
	ClassAsteroid
)

func (c BodyClass) String() string {
	switch c {
	case ClassMainSequence:
		return "main-sequence"
	case ClassWhiteDwarf:
		return "white-dwarf"
	case ClassNeutronStar:
		return "neutron-star"
	case ClassBrownDwarf:
		return "brown-dwarf"
	case ClassBlackHole:
		return "black-hole"
	case ClassRockyPlanet:
		return "rocky-planet"
	case ClassGasGiant:
		return "gas-giant"
	case ClassIceGiant:
		return "ice-giant"
	case ClassAsteroid:
		return "asteroid"
	default:
		panic("unknown body class")
	}
}

// BodyProperties describes a physical body: mass (kg), radius (m),
// luminosity (W, 0 for non-luminous classes), effective temperature (K) and
// bulk density (kg/m³, always mass over the volume of a sphere of the given
// radius). Fully determined by the inputs and the class relation.
type BodyProperties struct {
	Class       BodyClass
	Mass        float64
	Radius      float64
	Luminosity  float64
	Temperature float64
	Density     float64
}

// sphereDensity derives the bulk density from mass and radius.
func sphereDensity(mass, radius float64) float64 {
	return mass / ((4. / 3.) * math.Pi * radius * radius * radius)
}

// blackBodyLuminosity is the Stefan-Boltzmann luminosity of a sphere.
func blackBodyLuminosity(radius, temp float64) float64 {
	return 4 * math.Pi * radius * radius * StefanBoltzmann * math.Pow(temp, 4)
}

// MakeMainSequenceStar models a main-sequence star of the given mass (kg)
// with the empirical relations L ∝ M^3.5 and R ∝ M^0.8, the temperature
// following from Stefan-Boltzmann inversion.
func MakeMainSequenceStar(mass float64) BodyProperties {
	m := mass / SolarMass
	radius := SolarRadius * math.Pow(m, 0.8)
	luminosity := SolarLuminosity * math.Pow(m, 3.5)
	temp := math.Pow(luminosity/(4*math.Pi*radius*radius*StefanBoltzmann), 0.25)
	return BodyProperties{
		Class:       ClassMainSequence,
		Mass:        mass,
		Radius:      radius,
		Luminosity:  luminosity,
		Temperature: temp,
		Density:     sphereDensity(mass, radius),
	}
}

// MakeWhiteDwarf models a white dwarf: the degenerate radius shrinks with the
// inverse cube root of the mass around an Earth-sized 1 M_sun anchor, and the
// surface temperature is a simplified mass-scaled cooling value.
func MakeWhiteDwarf(mass float64) BodyProperties {
	m := mass / SolarMass
	radius := 0.01 * SolarRadius * math.Pow(m, -1./3.)
	temp := 1e4 * m
	return BodyProperties{
		Class:       ClassWhiteDwarf,
		Mass:        mass,
		Radius:      radius,
		Luminosity:  blackBodyLuminosity(radius, temp),
		Temperature: temp,
		Density:     sphereDensity(mass, radius),
	}
}

// MakeNeutronStar models a neutron star with a fixed 11 km radius and a fixed
// 1e6 K surface temperature.
func MakeNeutronStar(mass float64) BodyProperties {
	const radius = 11e3
	const temp = 1e6
	return BodyProperties{
		Class:       ClassNeutronStar,
		Mass:        mass,
		Radius:      radius,
		Luminosity:  blackBodyLuminosity(radius, temp),
		Temperature: temp,
		Density:     sphereDensity(mass, radius),
	}
}

// MakeBrownDwarf models a brown dwarf with a fixed radius of 0.1 solar radius
// and a temperature scaling linearly with mass around a 0.05 M_sun anchor.
func MakeBrownDwarf(mass float64) BodyProperties {
	radius := 0.1 * SolarRadius
	temp := 2000 * mass / (0.05 * SolarMass)
	return BodyProperties{
		Class:       ClassBrownDwarf,
		Mass:        mass,
		Radius:      radius,
		Luminosity:  blackBodyLuminosity(radius, temp),
		Temperature: temp,
		Density:     sphereDensity(mass, radius),
	}
}

// MakeBlackHole models a black hole sized by its Schwarzschild radius 2GM/c²,
// with zero luminosity and temperature.
func MakeBlackHole(mass float64) BodyProperties {
	radius := 2 * G * mass / (SpeedOfLight * SpeedOfLight)
	return BodyProperties{
		Class:   ClassBlackHole,
		Mass:    mass,
		Radius:  radius,
		Density: sphereDensity(mass, radius),
	}
}

// MakeRockyPlanet models a terrestrial planet with the Chen & Kipping (2017)
// terran exponent below two Earth masses and a steeper super-Earth branch
// above, continuous at the break.
func MakeRockyPlanet(mass float64) BodyProperties {
	m := mass / EarthMass
	var radius float64
	if m <= 2 {
		radius = EarthRadius * math.Pow(m, 0.28)
	} else {
		radius = EarthRadius * math.Pow(2, 0.28) * math.Pow(m/2, 0.59)
	}
	return BodyProperties{
		Class:   ClassRockyPlanet,
		Mass:    mass,
		Radius:  radius,
		Density: sphereDensity(mass, radius),
	}
}

// MakeGasGiant models a Jovian planet: radius is nearly flat with mass above
// half a Jupiter mass and follows the Neptunian slope below, continuous at
// the break.
func MakeGasGiant(mass float64) BodyProperties {
	m := mass / JupiterMass
	var radius float64
	if m >= 0.5 {
		radius = JupiterRadius * math.Pow(m, 0.06)
	} else {
		radius = JupiterRadius * math.Pow(0.5, 0.06) * math.Pow(m/0.5, 0.59)
	}
	return BodyProperties{
		Class:   ClassGasGiant,
		Mass:    mass,
		Radius:  radius,
		Density: sphereDensity(mass, radius),
	}
}

// MakeIceGiant models a Neptunian planet around a Neptune anchor, flattening
// above three Neptune masses, continuous at the break.
func MakeIceGiant(mass float64) BodyProperties {
	m := mass / NeptuneMass
	var radius float64
	if m <= 3 {
		radius = NeptuneRadius * math.Pow(m, 0.59)
	} else {
		radius = NeptuneRadius * math.Pow(3, 0.59) * math.Pow(m/3, 0.04)
	}
	return BodyProperties{
		Class:   ClassIceGiant,
		Mass:    mass,
		Radius:  radius,
		Density: sphereDensity(mass, radius),
	}
}

// MakeAsteroid models a small body from its radius (m) and bulk density
// (kg/m³), the inverse of the usual mass-to-radius direction.
func MakeAsteroid(radius, density float64) BodyProperties {
	mass := density * (4. / 3.) * math.Pi * radius * radius * radius
	return BodyProperties{
		Class:   ClassAsteroid,
		Mass:    mass,
		Radius:  radius,
		Density: sphereDensity(mass, radius),
	}
}
