package astrokit

import (
	"fmt"
	"math"
)

// SectorID addresses one cell of the multi-resolution spatial grid. Cells at
// level L are cubes of BaseSectorSize / 2^L meters per side; the ids form an
// implicit octree where the parent of a cell is found by halving each
// coordinate with an arithmetic right shift.
type SectorID struct {
	X, Y, Z int64
	Level   int
}

// InvalidLevelError is returned for a negative sector resolution level.
type InvalidLevelError struct {
	Level int
}

func (e InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid sector level %d (must be >= 0)", e.Level)
}

// NonFiniteCoordinateError is returned when a point carries a NaN or infinite
// coordinate. The integer-valued SectorID has no NaN sentinel, so such a
// point has no sector.
type NonFiniteCoordinateError struct {
	X, Y, Z float64
}

func (e NonFiniteCoordinateError) Error() string {
	return fmt.Sprintf("non-finite coordinate in point (%g, %g, %g)", e.X, e.Y, e.Z)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// sectorSize returns the cell side length in meters at the given level.
func sectorSize(level int) float64 {
	return astroConfig().SectorBaseSize / math.Pow(2, float64(level))
}

// SectorAt maps a point (meters) to its sector id at the given resolution
// level. Coordinates floor-divide by the cell size, so negative coordinates
// land in negative cells rather than truncating toward zero. A point with a
// NaN or infinite coordinate returns a NonFiniteCoordinateError.
func SectorAt(x, y, z float64, level int) (SectorID, error) {
	if level < 0 {
		return SectorID{}, InvalidLevelError{Level: level}
	}
	if !finite(x) || !finite(y) || !finite(z) {
		return SectorID{}, NonFiniteCoordinateError{X: x, Y: y, Z: z}
	}
	size := sectorSize(level)
	id := SectorID{
		X:     int64(math.Floor(x / size)),
		Y:     int64(math.Floor(y / size)),
		Z:     int64(math.Floor(z / size)),
		Level: level,
	}
	sectorAssignments.Inc()
	return id, nil
}

// Size returns the side length of this sector's cell in meters.
func (id SectorID) Size() float64 {
	return sectorSize(id.Level)
}

// Center returns the center point of the sector cell in meters.
func (id SectorID) Center() []float64 {
	size := id.Size()
	return []float64{
		(float64(id.X) + 0.5) * size,
		(float64(id.Y) + 0.5) * size,
		(float64(id.Z) + 0.5) * size,
	}
}

// Bounds returns the inclusive lower and exclusive upper corner of the
// sector cell in meters.
func (id SectorID) Bounds() (min, max []float64) {
	size := id.Size()
	min = []float64{float64(id.X) * size, float64(id.Y) * size, float64(id.Z) * size}
	max = []float64{float64(id.X+1) * size, float64(id.Y+1) * size, float64(id.Z+1) * size}
	return
}

// Parent returns the enclosing sector one level up. The arithmetic right
// shift floors negative coordinates, preserving octree nesting across the
// origin. A level-0 sector is its own parent.
func (id SectorID) Parent() SectorID {
	if id.Level == 0 {
		return id
	}
	return SectorID{X: id.X >> 1, Y: id.Y >> 1, Z: id.Z >> 1, Level: id.Level - 1}
}

// String implements the Stringer interface.
func (id SectorID) String() string {
	return fmt.Sprintf("sector (%d, %d, %d) @ L%d", id.X, id.Y, id.Z, id.Level)
}
