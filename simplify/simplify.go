// Package simplify assigns Douglas-Peucker retention weights to flattened
// coordinate runs.
package simplify

// Simplify walks the (x, y, weight) triples between the first and last
// offsets and stores the maximum squared segment distance as the weight of
// every point worth keeping above sqTolerance. The first and last triples
// are never written, their weights belong to the caller.
func Simplify(coords []float64, first, last int, sqTolerance float64) {
	maxSqDist := sqTolerance
	mid := (last - first) >> 1
	minPosToMid := last - first
	index := 0

	ax := coords[first]
	ay := coords[first+1]
	bx := coords[last]
	by := coords[last+1]

	for i := first + 3; i < last; i += 3 {
		d := sqSegDist(coords[i], coords[i+1], ax, ay, bx, by)

		if d > maxSqDist {
			index = i
			maxSqDist = d
		} else if d == maxSqDist {
			// Prefer a pivot near the middle, which keeps the recursion
			// shallow on degenerate inputs.
			posToMid := abs(i - mid)
			if posToMid < minPosToMid {
				index = i
				minPosToMid = posToMid
			}
		}
	}

	if maxSqDist > sqTolerance {
		if index-first > 3 {
			Simplify(coords, first, index, sqTolerance)
		}
		coords[index+2] = maxSqDist
		if last-index > 3 {
			Simplify(coords, index, last, sqTolerance)
		}
	}
}

// sqSegDist returns the squared distance from (px, py) to the segment
// between (x, y) and (bx, by).
func sqSegDist(px, py, x, y, bx, by float64) float64 {
	dx := bx - x
	dy := by - y

	if dx != 0 || dy != 0 {
		t := ((px-x)*dx + (py-y)*dy) / (dx*dx + dy*dy)

		if t > 1 {
			x = bx
			y = by
		} else if t > 0 {
			x += dx * t
			y += dy * t
		}
	}

	dx = px - x
	dy = py - y

	return dx*dx + dy*dy
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
