package examples

import (
	"math"

	"utr/internal/check"
	"utr/internal/suite"
)

// Point is an ordered pair of coordinates. The named struct is the
// canonical representation; the packed forms below exist only to show what
// happens when a flat buffer's layout is assumed instead of checked.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Pack flattens two points row-wise into [x1, y1, x2, y2].
func Pack(p, q Point) []float64 {
	return []float64{p.X, p.Y, q.X, q.Y}
}

// DistancePacked reads a row-wise buffer the way Pack wrote it.
func DistancePacked(buf []float64) float64 {
	return Distance(Point{X: buf[0], Y: buf[1]}, Point{X: buf[2], Y: buf[3]})
}

// DistancePackedColumns assumes the buffer is column-wise [x1, x2, y1, y2].
// With a row-wise buffer it silently computes the distance between two
// points that were never measured.
func DistancePackedColumns(buf []float64) float64 {
	return Distance(Point{X: buf[0], Y: buf[2]}, Point{X: buf[1], Y: buf[3]})
}

func registerDistance(s *suite.Suite) error {
	const tol = 1e-9

	return registerAll(s,
		suite.Case{Name: "distance/three-four-five", Body: func(t *check.T) {
			t.Approx(5, Distance(Point{0, 0}, Point{3, 4}), tol)
		}},
		suite.Case{Name: "distance/packed-round-trips", Body: func(t *check.T) {
			t.Approx(5, DistancePacked(Pack(Point{0, 0}, Point{3, 4})), tol)
		}},
		suite.Case{Name: "distance/column-layout-measures-wrong-points", Body: func(t *check.T) {
			// Row-wise [0,0,3,4] read column-wise becomes (0,3) and (0,4).
			t.Approx(1, DistancePackedColumns(Pack(Point{0, 0}, Point{3, 4})), tol)
		}},
		suite.Case{Name: "distance/zero-for-identical-points", Body: func(t *check.T) {
			t.Approx(0, Distance(Point{1.5, -2.5}, Point{1.5, -2.5}), 0)
		}},
	)
}
