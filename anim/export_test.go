package anim

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fermatics/raybend/refract"
)

func TestWriteSolutionJSON(t *testing.T) {
	assert := assert.New(t)

	pf, err := refract.NewPathFinder(refract.Params{
		ReferenceSpeed: 4,
		Medium1:        refract.Medium{Speed: 2},
		Medium2:        refract.Medium{Speed: 2},
		A:              refract.P(0, 10),
		B:              refract.P(10, -10),
		PlaneSize:      refract.Size{Width: 20, Height: 20},
	})
	if err != nil {
		t.Fatalf("NewPathFinder: %v", err)
	}
	path, err := pf.ComputePath()
	if err != nil {
		t.Fatalf("ComputePath: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteSolutionJSON(&buf, pf, path); err != nil {
		t.Fatalf("WriteSolutionJSON: %v", err)
	}

	var sol SolutionJSON
	if err := json.Unmarshal(buf.Bytes(), &sol); err != nil {
		t.Fatalf("unmarshaling export: %v", err)
	}

	assert.Len(sol.Points, 4)
	assert.Equal(PointJSON{X: 0, Y: 10}, sol.Points[0])
	assert.Equal(PointJSON{X: 10, Y: -10}, sol.Points[3])
	assert.Equal(0.0, sol.InterfaceY)

	// Equal speeds keep the ray straight, crossing y=0 midway.
	assert.InDelta(5.0, sol.CrossingX, 1e-6)
	assert.InDelta(math.Sqrt(500), sol.PathLength, 1e-6)
	assert.InDelta(math.Sqrt(500)/2, sol.TravelTime, 1e-6)

	assert.InDelta(2.0, sol.Above.RefractiveIndex, 1e-12)
	assert.InDelta(2.0, sol.Below.RefractiveIndex, 1e-12)
	assert.Equal(2.0, sol.Above.Speed)
}
