package anim

import (
	"fmt"

	lin "github.com/sgreben/piecewiselinear"

	"github.com/fermatics/raybend/refract"
)

// Pacing selects how animation frames are spread along the path.
type Pacing int8

const (
	// PaceByLength gives each leg frames in proportion to its length,
	// so the marker crosses the plane at constant screen speed.
	PaceByLength Pacing = iota
	// PaceBySpeed weights each leg by its travel time instead, so the
	// marker visibly slows down in the slower medium.
	PaceBySpeed
)

// ParsePacing maps a user-facing pacing name to a Pacing.
func ParsePacing(text string) (Pacing, error) {
	switch text {
	case "length":
		return PaceByLength, nil
	case "speed":
		return PaceBySpeed, nil
	default:
		return 0, fmt.Errorf("invalid pacing: %q", text)
	}
}

func (p Pacing) String() string {
	if p == PaceBySpeed {
		return "speed"
	}
	return "length"
}

// Schedule returns the marker position for each animation frame. Each
// leg receives a whole number of frames proportional to its weight
// (length, or travel time under PaceBySpeed), truncated, so the total
// may come out slightly under the requested count. Within a leg the
// marker moves by linear interpolation. Zero-length legs, including
// the nominal zero middle leg at the crossing, get no frames.
func Schedule(path refract.Path, total int, pacing Pacing, v1, v2 float64) []refract.Point {
	if total < 1 {
		return nil
	}

	weights := path.SegmentLengths()
	if pacing == PaceBySpeed {
		// The middle leg sits on the interface itself; it has zero
		// length in the nominal case and is billed to the second
		// medium otherwise.
		speeds := [3]float64{v1, v2, v2}
		for i := range weights {
			weights[i] /= speeds[i]
		}
	}
	var totalWeight float64
	for _, w := range weights {
		totalWeight += w
	}
	if totalWeight == 0 {
		// A and B coincide; hold the marker in place.
		frames := make([]refract.Point, total)
		for i := range frames {
			frames[i] = path.Start()
		}
		return frames
	}

	frames := make([]refract.Point, 0, total)
	for seg := 0; seg < 3; seg++ {
		count := int(float64(total) * weights[seg] / totalWeight)
		if count == 0 {
			continue
		}
		fx := lin.Function{X: []float64{0, 1}, Y: []float64{path[seg].X, path[seg+1].X}}
		fy := lin.Function{X: []float64{0, 1}, Y: []float64{path[seg].Y, path[seg+1].Y}}
		for i := 0; i < count; i++ {
			t := float64(i) / float64(count)
			frames = append(frames, refract.P(fx.At(t), fy.At(t)))
		}
	}
	if len(frames) == 0 {
		frames = append(frames, path.Start())
	}
	return frames
}
