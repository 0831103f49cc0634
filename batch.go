package astrokit

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// BatchEvaluator runs the core computations element-wise over ordered inputs.
// Each output depends only on its own input, so rows with degenerate values
// come back as NaN without disturbing their neighbors. The zero value is
// usable and silent; NewBatchEvaluator attaches a logger.
type BatchEvaluator struct {
	logger kitlog.Logger
}

// NewBatchEvaluator returns a batch evaluator logging to stdout under the
// given name.
func NewBatchEvaluator(name string) BatchEvaluator {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "batch", name)
	return BatchEvaluator{logger: klog}
}

func (b BatchEvaluator) log(keyvals ...interface{}) {
	if b.logger != nil {
		b.logger.Log(keyvals...)
	}
}

// States propagates every element set to the provided Julian date, in input
// order.
func (b BatchEvaluator) States(elements []Elements, jd float64) []State {
	b.log("op", "propagate", "rows", len(elements), "jd", jd)
	states := make([]State, len(elements))
	for i, el := range elements {
		states[i] = Propagate(el, jd)
	}
	return states
}

// SectorIDs maps every point (meters, 3x1 vectors) to its sector id at the
// provided level, in input order. A negative level is a contract violation
// and aborts the whole call.
func (b BatchEvaluator) SectorIDs(points [][]float64, level int) ([]SectorID, error) {
	if level < 0 {
		return nil, InvalidLevelError{Level: level}
	}
	b.log("op", "sector", "rows", len(points), "level", level)
	ids := make([]SectorID, len(points))
	for i, p := range points {
		id, err := SectorAt(p[0], p[1], p[2], level)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// Separations returns the angular separation in degrees of each position to
// the provided reference position, in input order.
func (b BatchEvaluator) Separations(positions []RADec, ref RADec) []float64 {
	b.log("op", "separation", "rows", len(positions))
	seps := make([]float64, len(positions))
	for i, p := range positions {
		seps[i] = p.Sep(ref).Deg()
	}
	return seps
}
