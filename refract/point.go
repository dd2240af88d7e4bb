package refract

import "math"

// Point is a position on the simulation plane.
type Point struct {
	X float64
	Y float64
}

// P is shorthand for constructing a Point.
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Translate returns the point shifted by dx and dy.
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Euclidean distance to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Size is the extent of the rendered plane in world units. It bounds
// drawing only; the crossing search is bracketed by the endpoints, not
// by the plane.
type Size struct {
	Width  float64
	Height float64
}

// Path is a bent ray from A to B: the start point, the interface
// crossing as reached from A's side, the crossing as left toward B's
// side, and the end point. The two middle points always lie on the
// interface and coincide up to rounding.
type Path [4]Point

// Start returns the ray's origin.
func (p Path) Start() Point { return p[0] }

// End returns the ray's destination.
func (p Path) End() Point { return p[3] }

// ArrivalCrossing returns the interface point as projected from the
// start side.
func (p Path) ArrivalCrossing() Point { return p[1] }

// DepartureCrossing returns the interface point the second medium's
// segment leaves from.
func (p Path) DepartureCrossing() Point { return p[2] }

// SegmentLengths returns the lengths of the three straight legs in
// order of travel.
func (p Path) SegmentLengths() [3]float64 {
	return [3]float64{
		p[0].Distance(p[1]),
		p[1].Distance(p[2]),
		p[2].Distance(p[3]),
	}
}

// TotalLength returns the arc length of the whole path.
func (p Path) TotalLength() float64 {
	lengths := p.SegmentLengths()
	return lengths[0] + lengths[1] + lengths[2]
}
