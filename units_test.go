package astrokit

import (
	"strings"
	"testing"

	"github.com/gonum/floats"
)

func TestLengthInMeters(t *testing.T) {
	for _, exp := range []struct {
		value  float64
		unit   string
		meters float64
	}{
		{1, "m", 1},
		{2.5, "km", 2500},
		{1, "AU", AU},
		{1, "pc", Parsec},
		{1, "ly", LightYear},
		{10, "PC", 10 * Parsec},
	} {
		got, err := LengthInMeters(exp.value, exp.unit)
		if err != nil {
			t.Fatalf("%f %s: %s", exp.value, exp.unit, err)
		}
		if !floats.EqualWithinRel(got, exp.meters, 1e-12) {
			t.Fatalf("%f %s = %g m, want %g", exp.value, exp.unit, got, exp.meters)
		}
	}
}

func TestMassInKg(t *testing.T) {
	for _, exp := range []struct {
		value float64
		unit  string
		kg    float64
	}{
		{1, "kg", 1},
		{1, "M_sun", SolarMass},
		{2, "m_earth", 2 * EarthMass},
		{1, "M_JUPITER", JupiterMass},
	} {
		got, err := MassInKg(exp.value, exp.unit)
		if err != nil {
			t.Fatalf("%f %s: %s", exp.value, exp.unit, err)
		}
		if !floats.EqualWithinRel(got, exp.kg, 1e-12) {
			t.Fatalf("%f %s = %g kg, want %g", exp.value, exp.unit, got, exp.kg)
		}
	}
}

func TestTimeInSeconds(t *testing.T) {
	for _, exp := range []struct {
		value   float64
		unit    string
		seconds float64
	}{
		{1, "s", 1},
		{2, "min", 120},
		{1, "h", 3600},
		{1, "d", 86400},
		{1, "yr", JulianYear},
		{1, "Myr", 1e6 * JulianYear},
		{1, "Gyr", 1e9 * JulianYear},
	} {
		got, err := TimeInSeconds(exp.value, exp.unit)
		if err != nil {
			t.Fatalf("%f %s: %s", exp.value, exp.unit, err)
		}
		if !floats.EqualWithinRel(got, exp.seconds, 1e-12) {
			t.Fatalf("%f %s = %g s, want %g", exp.value, exp.unit, got, exp.seconds)
		}
	}
}

func TestUnknownUnit(t *testing.T) {
	_, err := LengthInMeters(1, "furlong")
	if err == nil {
		t.Fatal("furlong did not fail")
	}
	// The error names the offending unit and the accepted set.
	msg := err.Error()
	for _, want := range []string{"furlong", "m", "km", "au", "ly", "pc"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q does not mention %q", msg, want)
		}
	}
	if _, err = MassInKg(1, "stone"); err == nil {
		t.Fatal("stone did not fail")
	}
	if _, err = TimeInSeconds(1, "fortnight"); err == nil {
		t.Fatal("fortnight did not fail")
	}
	// Length units do not leak into other quantities.
	if _, err = MassInKg(1, "pc"); err == nil {
		t.Fatal("pc is not a mass unit")
	}
}
