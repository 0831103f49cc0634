package astrokit

import (
	"fmt"
	"strings"

	"github.com/gonum/matrix/mat64"
)

// Reference frame tags. Barycentric is accepted as a synonym of ICRS.
const (
	FrameICRS     = "icrs"
	FrameGalactic = "galactic"
)

// icrs2gal is the fixed rotation from equatorial ICRS to Galactic coordinates,
// derived from the IAU 1958 galactic pole and zero-longitude definitions at
// epoch J2000.
var icrs2gal = mat64.NewDense(3, 3, []float64{
	-0.0548755604162154, -0.8734370902348850, -0.4838350155487132,
	+0.4941094278755837, -0.4448296299600112, +0.7469822444972189,
	-0.8676661490190047, -0.1980763734312015, +0.4559837761750669,
})

// UnsupportedFrameError is returned for a frame pair outside the
// {icrs↔galactic, identity} set.
type UnsupportedFrameError struct {
	From, To string
}

func (e UnsupportedFrameError) Error() string {
	return fmt.Sprintf("unsupported frame transform '%s' -> '%s' (supported frames: %s, %s)", e.From, e.To, FrameICRS, FrameGalactic)
}

// canonicalFrame normalizes a frame name to its canonical lowercase tag.
func canonicalFrame(name string) string {
	switch f := strings.ToLower(name); f {
	case "barycentric":
		return FrameICRS
	default:
		return f
	}
}

// TransformFrame rotates the provided position or velocity vector from one
// reference frame to another. Frame names are case-insensitive. The rotation
// carries no origin translation, so it applies identically to positions and
// velocities.
func TransformFrame(v []float64, from, to string) ([]float64, error) {
	fFrom := canonicalFrame(from)
	fTo := canonicalFrame(to)
	if fFrom == fTo {
		return []float64{v[0], v[1], v[2]}, nil
	}
	switch {
	case fFrom == FrameICRS && fTo == FrameGalactic:
		return MxV33(icrs2gal, v), nil
	case fFrom == FrameGalactic && fTo == FrameICRS:
		return MxtV33(icrs2gal, v), nil
	default:
		return nil, UnsupportedFrameError{From: from, To: to}
	}
}
