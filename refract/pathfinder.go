// Package refract solves two-media least-time ray paths. Given fixed
// endpoints on opposite sides of a horizontal interface between media of
// different wave speeds, it finds the interface crossing that minimizes
// total travel time and reconstructs the bent path through it.
package refract

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// InvalidParameterError reports a constructor argument that makes the
// least-time problem ill-posed, such as a non-positive wave speed.
type InvalidParameterError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Param, e.Value, e.Reason)
}

// Params bundles everything a PathFinder needs. A PathFinder reads only
// from its Params; there is no global simulation state.
type Params struct {
	// ReferenceSpeed normalizes refractive indices. It is the speed of
	// light for optics, but any positive constant works since it
	// cancels out of the travel times.
	ReferenceSpeed float64
	// Medium1 carries propagation on the start point's side of the
	// interface, Medium2 on the end point's side.
	Medium1 Medium
	Medium2 Medium
	// A and B are the fixed ray endpoints.
	A Point
	B Point
	// InterfaceY is the y-coordinate of the horizontal media boundary.
	InterfaceY float64
	// PlaneSize bounds rendering only; it never constrains the search.
	PlaneSize Size
	// Minimizer searches the crossing bracket. Nil selects Brent with
	// its default tolerance.
	Minimizer Minimizer
}

// PathFinder solves for the least-time path from A to B across the
// interface, following Fermat's principle of least time.
type PathFinder struct {
	params Params
	n1     float64
	n2     float64
	min    Minimizer
}

// NewPathFinder validates params and constructs a PathFinder. All
// speeds must be strictly positive; geometry may be any real values.
func NewPathFinder(params Params) (*PathFinder, error) {
	if params.ReferenceSpeed <= 0 {
		return nil, &InvalidParameterError{Param: "reference_speed", Value: params.ReferenceSpeed, Reason: "must be strictly positive"}
	}
	if params.Medium1.Speed <= 0 {
		return nil, &InvalidParameterError{Param: "medium_1.speed", Value: params.Medium1.Speed, Reason: "must be strictly positive"}
	}
	if params.Medium2.Speed <= 0 {
		return nil, &InvalidParameterError{Param: "medium_2.speed", Value: params.Medium2.Speed, Reason: "must be strictly positive"}
	}
	if params.PlaneSize.Width < 0 {
		return nil, &InvalidParameterError{Param: "plane.width", Value: params.PlaneSize.Width, Reason: "must not be negative"}
	}
	if params.PlaneSize.Height < 0 {
		return nil, &InvalidParameterError{Param: "plane.height", Value: params.PlaneSize.Height, Reason: "must not be negative"}
	}

	m := params.Minimizer
	if m == nil {
		m = Brent{}
	}
	return &PathFinder{
		params: params,
		n1:     params.Medium1.RefractiveIndex(params.ReferenceSpeed),
		n2:     params.Medium2.RefractiveIndex(params.ReferenceSpeed),
		min:    m,
	}, nil
}

// Params returns a copy of the finder's parameters.
func (pf *PathFinder) Params() Params { return pf.params }

// Indices returns the refractive indices of the two media relative to
// the reference speed.
func (pf *PathFinder) Indices() (n1, n2 float64) { return pf.n1, pf.n2 }

// crossing returns the interface point at abscissa x.
func (pf *PathFinder) crossing(x float64) Point {
	return Point{X: x, Y: pf.params.InterfaceY}
}

// Bracket returns the closed x-interval the crossing may lie in: the
// span between the two endpoints' horizontal positions. The least-time
// crossing of two media always falls inside it.
func (pf *PathFinder) Bracket() Bounds {
	return Bounds{
		Lo: math.Min(pf.params.A.X, pf.params.B.X),
		Hi: math.Max(pf.params.A.X, pf.params.B.X),
	}
}

// DistanceAndIncidenceAngle returns the length of the A-to-crossing leg
// and its four-quadrant angle to the horizontal, for a crossing at
// abscissa x on the interface.
func (pf *PathFinder) DistanceAndIncidenceAngle(x float64) (distance, incidence float64) {
	dx := x - pf.params.A.X
	dy := pf.params.InterfaceY - pf.params.A.Y
	return math.Hypot(dx, dy), math.Atan2(dy, dx)
}

// TravelTime returns the total time from A to B through a crossing at
// x: each leg's length over the reference speed, scaled by that
// medium's refractive index. The reference speed cancels against the
// indices; it is kept in the expression to mirror n = c/v.
func (pf *PathFinder) TravelTime(x float64) float64 {
	d1, _ := pf.DistanceAndIncidenceAngle(x)
	d2 := pf.crossing(x).Distance(pf.params.B)
	t1 := d1 / pf.params.ReferenceSpeed * pf.n1
	t2 := d2 / pf.params.ReferenceSpeed * pf.n2
	return t1 + t2
}

// FindOptimalCrossing returns the crossing abscissa minimizing
// TravelTime over the bracket. A zero-width bracket short-circuits to
// A's abscissa. When both endpoints sit exactly on the interface and
// the media share one speed, the travel time is flat across the whole
// bracket; that case settles on A's abscissa rather than whichever
// interior point the search visits last.
func (pf *PathFinder) FindOptimalCrossing() (float64, error) {
	bracket := pf.Bracket()
	if bracket.Lo == bracket.Hi {
		return pf.params.A.X, nil
	}
	if pf.params.A.Y == pf.params.InterfaceY && pf.params.B.Y == pf.params.InterfaceY &&
		pf.params.Medium1.Speed == pf.params.Medium2.Speed {
		return pf.params.A.X, nil
	}

	x, err := pf.min.Minimize(pf.TravelTime, bracket)
	if err != nil {
		return x, fmt.Errorf("searching crossing bracket [%v, %v]: %w", bracket.Lo, bracket.Hi, err)
	}
	return x, nil
}

// RefractionAngle returns the refraction-law angle for a crossing at x:
// asin of the incidence sine scaled by the index ratio. The sine is
// clamped to [-1, 1] first, so geometries at or beyond total internal
// reflection saturate to a grazing +-pi/2 instead of producing NaN.
func (pf *PathFinder) RefractionAngle(x float64) float64 {
	_, incidence := pf.DistanceAndIncidenceAngle(x)
	sinRefraction := pf.n1 / pf.n2 * math.Sin(incidence)
	return math.Asin(clamp(sinRefraction, -1, 1))
}

// ExitDirection returns the angle to the horizontal of the crossing-to-B
// leg. A vertical leg has no slope to take the arctangent of; it
// resolves to +-pi/2, signed by which side of the interface B lies on.
func (pf *PathFinder) ExitDirection(x float64) float64 {
	b := pf.params.B
	if b.X != x {
		return math.Atan((b.Y - pf.params.InterfaceY) / (b.X - x))
	}
	return math.Pi / 2 * sign(b.Y-pf.params.InterfaceY)
}

// PathThrough reconstructs the bent path forced through the crossing at
// x. The arrival-side crossing is re-projected from A along the
// incidence direction; the second leg runs straight from the crossing
// to B. At the least-time crossing that straight leg is exactly the
// refraction-law direction, so RefractionAngle stays a diagnostic and
// never steers the geometry.
func (pf *PathFinder) PathThrough(x float64) Path {
	d1, incidence := pf.DistanceAndIncidenceAngle(x)
	arrivalX := pf.params.A.X + d1*math.Cos(incidence)

	log.WithFields(log.Fields{
		"crossing":   x,
		"incidence":  incidence,
		"exit":       pf.ExitDirection(x),
		"refraction": pf.RefractionAngle(x),
	}).Debug("Reconstructed path through crossing")

	return Path{
		pf.params.A,
		Point{X: arrivalX, Y: pf.params.InterfaceY},
		pf.crossing(x),
		pf.params.B,
	}
}

// ComputePath finds the least-time crossing and reconstructs the bent
// path through it.
func (pf *PathFinder) ComputePath() (Path, error) {
	x, err := pf.FindOptimalCrossing()
	if err != nil {
		return Path{}, err
	}
	verifySnell(pf, x)

	path := pf.PathThrough(x)
	log.WithFields(log.Fields{
		"crossing":    x,
		"travel_time": pf.TravelTime(x),
		"length":      path.TotalLength(),
	}).Debug("Solved least-time path")
	return path, nil
}

// TimeCurve samples TravelTime at n+1 evenly spaced crossings spanning
// the bracket, for plotting the time landscape next to the solved
// minimum. Returns the abscissas and the matching travel times.
func (pf *PathFinder) TimeCurve(n int) (xs, times []float64) {
	if n < 1 {
		n = 1
	}
	bracket := pf.Bracket()
	xs = floats.Span(make([]float64, n+1), bracket.Lo, bracket.Hi)
	times = make([]float64, len(xs))
	for i, x := range xs {
		times[i] = pf.TravelTime(x)
	}
	return xs, times
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
