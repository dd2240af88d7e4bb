package refract

import (
	"fmt"
	"math"
)

// Objective is a scalar function of one variable to be minimized.
type Objective func(x float64) float64

// Bounds is the closed interval a bounded search is confined to.
type Bounds struct {
	Lo float64
	Hi float64
}

// normalized returns the bounds with Lo <= Hi.
func (b Bounds) normalized() Bounds {
	if b.Hi < b.Lo {
		return Bounds{Lo: b.Hi, Hi: b.Lo}
	}
	return b
}

// Width returns the length of the interval.
func (b Bounds) Width() float64 {
	n := b.normalized()
	return n.Hi - n.Lo
}

// Minimizer locates the argument minimizing an objective over fixed
// bounds. Implementations never evaluate or return a point outside the
// bounds, and must be deterministic for identical inputs.
type Minimizer interface {
	Minimize(f Objective, bounds Bounds) (float64, error)
}

// OptimizationError reports a search that exhausted its iteration cap
// before reaching its tolerance. The best estimate found so far is
// carried along so callers can still inspect or report it.
type OptimizationError struct {
	BestX      float64 // best argument seen
	BestF      float64 // objective value at BestX
	Achieved   float64 // bracket half-width around BestX at exit
	Iterations int
}

func (e *OptimizationError) Error() string {
	return fmt.Sprintf("no convergence after %d iterations: best x=%v (f=%v), bracket half-width %v",
		e.Iterations, e.BestX, e.BestF, e.Achieved)
}

const (
	defaultTolerance  = 1e-10
	defaultIterations = 500

	// (3 - sqrt(5)) / 2, the minor golden section
	goldenSection = 0.3819660112501051

	// sqrt of float64 machine epsilon; bracketing a smooth minimum
	// tighter than sqrtEps*|x| is numerically meaningless
	sqrtEps = 1.4901161193847656e-08
)

func tolOrDefault(tol float64) float64 {
	if tol > 0 {
		return tol
	}
	return defaultTolerance
}

func iterOrDefault(n int) int {
	if n > 0 {
		return n
	}
	return defaultIterations
}

// Brent minimizes by alternating golden-section steps with successive
// parabolic interpolation, accepting a parabolic step only when it
// falls inside the bracket and shrinks it fast enough. This is the
// classic bounded scalar search and the default for crossing solves.
// The zero value uses a 1e-10 tolerance and a 500 iteration cap.
type Brent struct {
	Tol     float64
	MaxIter int
}

// Minimize implements Minimizer. An interval of zero width returns its
// single point immediately.
func (br Brent) Minimize(f Objective, bounds Bounds) (float64, error) {
	bounds = bounds.normalized()
	a, b := bounds.Lo, bounds.Hi
	if a == b {
		return a, nil
	}
	tol := tolOrDefault(br.Tol)
	maxIter := iterOrDefault(br.MaxIter)

	x := a + goldenSection*(b-a)
	w, v := x, x
	fx := f(x)
	fw, fv := fx, fx

	// d is the step about to be taken, e the step taken two
	// iterations ago; the parabolic fit must beat half of e to be
	// accepted.
	var d, e float64
	for i := 0; i < maxIter; i++ {
		mid := 0.5 * (a + b)
		tol1 := sqrtEps*math.Abs(x) + tol/3
		tol2 := 2 * tol1
		if math.Abs(x-mid) <= tol2-0.5*(b-a) {
			return x, nil
		}

		parabolic := false
		if math.Abs(e) > tol1 {
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			prev := e
			e = d
			if math.Abs(p) < math.Abs(0.5*q*prev) && p > q*(a-x) && p < q*(b-x) {
				d = p / q
				u := x + d
				// Keep trial points clear of the bounds.
				if u-a < tol2 || b-u < tol2 {
					d = math.Copysign(tol1, mid-x)
				}
				parabolic = true
			}
		}
		if !parabolic {
			if x < mid {
				e = b - x
			} else {
				e = a - x
			}
			d = goldenSection * e
		}

		var u float64
		if math.Abs(d) >= tol1 {
			u = x + d
		} else {
			u = x + math.Copysign(tol1, d)
		}
		fu := f(u)

		if fu <= fx {
			if u < x {
				b = x
			} else {
				a = x
			}
			v, fv = w, fw
			w, fw = x, fx
			x, fx = u, fu
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || w == x {
				v, fv = w, fw
				w, fw = u, fu
			} else if fu <= fv || v == x || v == w {
				v, fv = u, fu
			}
		}
	}

	return x, &OptimizationError{
		BestX:      x,
		BestF:      fx,
		Achieved:   math.Max(x-a, b-x),
		Iterations: maxIter,
	}
}

// GoldenSection is a plain golden-section search. It converges slower
// than Brent but its bracketing logic is trivially auditable, so it is
// kept as a cross-check strategy. The zero value uses the same
// defaults as Brent.
type GoldenSection struct {
	Tol     float64
	MaxIter int
}

// Minimize implements Minimizer.
func (gs GoldenSection) Minimize(f Objective, bounds Bounds) (float64, error) {
	bounds = bounds.normalized()
	a, b := bounds.Lo, bounds.Hi
	if a == b {
		return a, nil
	}
	tol := tolOrDefault(gs.Tol)
	maxIter := iterOrDefault(gs.MaxIter)

	const ratio = 0.6180339887498949
	c := b - ratio*(b-a)
	d := a + ratio*(b-a)
	fc, fd := f(c), f(d)

	for i := 0; i < maxIter; i++ {
		if b-a <= sqrtEps*(math.Abs(a)+math.Abs(b))+tol {
			return 0.5 * (a + b), nil
		}
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - ratio*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + ratio*(b-a)
			fd = f(d)
		}
	}

	best, fBest := c, fc
	if fd < fc {
		best, fBest = d, fd
	}
	return best, &OptimizationError{
		BestX:      best,
		BestF:      fBest,
		Achieved:   0.5 * (b - a),
		Iterations: maxIter,
	}
}
