//go:build verify_snell
// +build verify_snell

package refract

import (
	"fmt"
	"math"
)

// Constants for verification
const (
	snellEpsilon = 1e-6
)

func init() {
	fmt.Println("Refraction law verification enabled.")
}

// verifySnell checks the law of refraction at a solved crossing: the
// sines of the two boundary-normal angles must stay proportional to the
// medium speeds. This only holds at the least-time crossing, so it runs
// on solver results, never on caller-forced crossings.
func verifySnell(pf *PathFinder, x float64) {
	d1, _ := pf.DistanceAndIncidenceAngle(x)
	d2 := pf.crossing(x).Distance(pf.params.B)
	if d1 == 0 || d2 == 0 {
		return
	}

	sin1 := math.Abs(x-pf.params.A.X) / d1
	sin2 := math.Abs(pf.params.B.X-x) / d2
	lhs := sin1 / pf.params.Medium1.Speed
	rhs := sin2 / pf.params.Medium2.Speed
	if math.Abs(lhs-rhs) > snellEpsilon*(math.Abs(lhs)+math.Abs(rhs)+1) {
		panic(fmt.Sprintf("refraction law violated at x=%v: sin1/v1=%v, sin2/v2=%v", x, lhs, rhs))
	}
}
