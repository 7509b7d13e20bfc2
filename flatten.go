package flatgeom

import (
	"fmt"
	"math"

	"github.com/tilecut/flatgeom/simplify"
)

// flattenPoint projects one position onto the end of a triple run. Single
// points are never simplified, their weight stays 0.
func flattenPoint(p []float64, out []float64) ([]float64, error) {
	if len(p) < 2 {
		return nil, fmt.Errorf("%w: coordinate pair has %d ordinates", ErrInvalidGeometry, len(p))
	}

	return append(out, projectX(p[0]), projectY(p[1]), 0), nil
}

// flattenLine projects a single line or ring into a flat run of
// (x, y, weight) triples and accumulates its size: the absolute shoelace
// area for polygon rings, the cumulative Euclidean length otherwise. The
// first and last triples are forced to weight 1 around the reducer call, so
// endpoints can never be dropped by simplification.
func flattenLine(line [][]float64, sqTolerance float64, isPolygon bool) (*Ring, error) {
	ring := &Ring{
		Coords: make([]float64, 0, len(line)*3),
	}

	var x0, y0 float64
	size := 0.0

	for j, p := range line {
		if len(p) < 2 {
			return nil, fmt.Errorf("%w: coordinate pair has %d ordinates", ErrInvalidGeometry, len(p))
		}

		x := projectX(p[0])
		y := projectY(p[1])

		ring.Coords = append(ring.Coords, x, y, 0)

		if j > 0 {
			if isPolygon {
				size += (x0*y - x*y0) / 2
			} else {
				size += math.Sqrt((x-x0)*(x-x0) + (y-y0)*(y-y0))
			}
		}
		x0 = x
		y0 = y
	}

	if len(ring.Coords) > 0 {
		last := len(ring.Coords) - 3
		ring.Coords[2] = 1
		simplify.Simplify(ring.Coords, 0, last, sqTolerance)
		ring.Coords[last+2] = 1
	}

	// Winding direction is not recoverable from Size, holes carry the same
	// sign as shells.
	ring.Size = math.Abs(size)
	ring.Start = 0
	ring.End = ring.Size

	return ring, nil
}

// flattenLines applies flattenLine to every member independently.
func flattenLines(lines [][][]float64, sqTolerance float64, isPolygon bool) ([]*Ring, error) {
	rings := make([]*Ring, len(lines))
	for i, line := range lines {
		ring, err := flattenLine(line, sqTolerance, isPolygon)
		if err != nil {
			return nil, err
		}
		rings[i] = ring
	}
	return rings, nil
}
