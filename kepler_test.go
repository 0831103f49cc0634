package astrokit

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestSolveKeplerResidual(t *testing.T) {
	for e := 0.0; e <= 0.99; e += 0.01 {
		for M := 0.0; M < 2*math.Pi; M += math.Pi / 36 {
			E := SolveKepler(M, e)
			residual := math.Abs(E - e*math.Sin(E) - M)
			if residual >= 1e-9 {
				t.Fatalf("residual %g for M=%f e=%f", residual, M, e)
			}
		}
	}
}

func TestSolveKeplerCircular(t *testing.T) {
	// With e=0 the equation is the identity.
	for M := 0.0; M < 2*math.Pi; M += math.Pi / 12 {
		if E := SolveKepler(M, 0); E != M {
			t.Fatalf("E=%f != M=%f for a circular orbit", E, M)
		}
	}
}

func TestTrueAnomaly(t *testing.T) {
	// Circular: ν == E.
	for E := 0.0; E < math.Pi; E += math.Pi / 12 {
		if ν := TrueAnomaly(E, 0); !floats.EqualWithinAbs(ν, E, 1e-12) {
			t.Fatalf("ν=%f != E=%f for e=0", ν, E)
		}
	}
	// Apsides are invariant for any eccentricity.
	for _, e := range []float64{0.1, 0.5, 0.9} {
		if ν := TrueAnomaly(0, e); ν != 0 {
			t.Fatalf("ν=%f != 0 at periapsis for e=%f", ν, e)
		}
		if ν := TrueAnomaly(math.Pi, e); !floats.EqualWithinAbs(math.Abs(ν), math.Pi, 1e-12) {
			t.Fatalf("ν=%f != π at apoapsis for e=%f", ν, e)
		}
	}
	// Elliptical: ν leads E on the outbound leg.
	if ν := TrueAnomaly(math.Pi/2, 0.5); ν <= math.Pi/2 {
		t.Fatalf("ν=%f should lead E for e=0.5", ν)
	}
}
