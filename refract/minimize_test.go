package refract

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrentQuadratic(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name   string
		f      Objective
		bounds Bounds
		want   float64
	}{
		{"centered", func(x float64) float64 { return (x - 2) * (x - 2) }, Bounds{0, 5}, 2},
		{"off_center", func(x float64) float64 { return (x + 1.5) * (x + 1.5) }, Bounds{-4, 4}, -1.5},
		{"quartic", func(x float64) float64 { return math.Pow(x-0.25, 4) }, Bounds{-1, 1}, 0.25},
		{"cosine", math.Cos, Bounds{0, 2 * math.Pi}, math.Pi},
		{"kink", func(x float64) float64 { return math.Abs(x - 0.7) }, Bounds{0, 2}, 0.7},
		{"monotone_down", func(x float64) float64 { return -x }, Bounds{0, 1}, 1},
		{"monotone_up", func(x float64) float64 { return x }, Bounds{2, 3}, 2},
		{"swapped_bounds", func(x float64) float64 { return (x - 2) * (x - 2) }, Bounds{5, 0}, 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			x, err := Brent{}.Minimize(test.f, test.bounds)
			assert.NoError(err)
			assert.InDelta(test.want, x, 1e-6, test.name)
		})
	}
}

func TestBrentDegenerateBounds(t *testing.T) {
	assert := assert.New(t)

	x, err := Brent{}.Minimize(func(x float64) float64 { return x * x }, Bounds{3, 3})
	assert.NoError(err)
	assert.Equal(3.0, x)
}

func TestBrentStaysInsideBounds(t *testing.T) {
	assert := assert.New(t)

	bounds := Bounds{Lo: -2, Hi: 7}
	f := func(x float64) float64 {
		assert.GreaterOrEqual(x, bounds.Lo)
		assert.LessOrEqual(x, bounds.Hi)
		return math.Sin(3*x) + 0.1*x*x
	}
	x, err := Brent{}.Minimize(f, bounds)
	assert.NoError(err)
	assert.GreaterOrEqual(x, bounds.Lo)
	assert.LessOrEqual(x, bounds.Hi)
}

func TestBrentDeterministic(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(-x) + x*x }
	a, err1 := Brent{}.Minimize(f, Bounds{-3, 3})
	b, err2 := Brent{}.Minimize(f, Bounds{-3, 3})
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if a != b {
		t.Errorf("two identical runs disagree: %v != %v", a, b)
	}
}

func TestBrentIterationCap(t *testing.T) {
	assert := assert.New(t)

	// Two iterations cannot bracket a minimum to 1e-10 over a unit
	// interval; the error must still carry a usable estimate.
	_, err := Brent{MaxIter: 2}.Minimize(func(x float64) float64 { return (x - 0.5) * (x - 0.5) }, Bounds{0, 1})
	assert.Error(err)

	var optErr *OptimizationError
	assert.True(errors.As(err, &optErr))
	assert.Equal(2, optErr.Iterations)
	assert.GreaterOrEqual(optErr.BestX, 0.0)
	assert.LessOrEqual(optErr.BestX, 1.0)
	assert.Greater(optErr.Achieved, 0.0)
	assert.NotEmpty(optErr.Error())
}

func TestGoldenSectionAgreesWithBrent(t *testing.T) {
	tests := []struct {
		name   string
		f      Objective
		bounds Bounds
	}{
		{"quadratic", func(x float64) float64 { return (x - 1.2) * (x - 1.2) }, Bounds{-10, 10}},
		{"cosh", math.Cosh, Bounds{-2, 5}},
		{"kink", func(x float64) float64 { return math.Abs(x + 3) }, Bounds{-8, 1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			xb, err := Brent{}.Minimize(test.f, test.bounds)
			if err != nil {
				t.Fatalf("brent: %v", err)
			}
			xg, err := GoldenSection{}.Minimize(test.f, test.bounds)
			if err != nil {
				t.Fatalf("golden section: %v", err)
			}
			if math.Abs(xb-xg) > 1e-6 {
				t.Errorf("strategies disagree: brent=%v golden=%v", xb, xg)
			}
		})
	}
}

func TestGoldenSectionDegenerateBounds(t *testing.T) {
	x, err := GoldenSection{}.Minimize(math.Sin, Bounds{1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if x != 1 {
		t.Errorf("want 1, got %v", x)
	}
}

func TestGoldenSectionIterationCap(t *testing.T) {
	assert := assert.New(t)

	_, err := GoldenSection{MaxIter: 1}.Minimize(func(x float64) float64 { return x * x }, Bounds{-1, 1})
	assert.Error(err)

	var optErr *OptimizationError
	assert.True(errors.As(err, &optErr))
	assert.GreaterOrEqual(optErr.BestX, -1.0)
	assert.LessOrEqual(optErr.BestX, 1.0)
}

func TestBoundsWidth(t *testing.T) {
	if w := (Bounds{2, 5}).Width(); w != 3 {
		t.Errorf("want 3, got %v", w)
	}
	if w := (Bounds{5, 2}).Width(); w != 3 {
		t.Errorf("normalized width: want 3, got %v", w)
	}
}
