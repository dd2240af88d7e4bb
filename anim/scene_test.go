package anim

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fermatics/raybend/refract"
)

func testScene() *Scene {
	return NewScene(nominalPath(), refract.Size{Width: 20, Height: 20}, 80, "test")
}

func TestNewSceneKeepsAspect(t *testing.T) {
	assert := assert.New(t)

	square := NewScene(nominalPath(), refract.Size{Width: 20, Height: 20}, 80, "t")
	assert.Equal(80, square.WidthPx)
	assert.Equal(80, square.HeightPx)

	wide := NewScene(nominalPath(), refract.Size{Width: 40, Height: 10}, 80, "t")
	assert.Equal(20, wide.HeightPx)
}

func TestProjectFlipsY(t *testing.T) {
	assert := assert.New(t)
	s := testScene()

	x, y := s.project(refract.P(0, 0))
	assert.Equal(0.0, x)
	assert.Equal(80.0, y)

	x, y = s.project(refract.P(20, 20))
	assert.Equal(80.0, x)
	assert.Equal(0.0, y)

	x, y = s.project(refract.P(10, 10))
	assert.Equal(40.0, x)
	assert.Equal(40.0, y)
}

func TestRenderFrameBounds(t *testing.T) {
	s := testScene()
	img := s.RenderFrame(refract.P(2, 8))
	bounds := img.Bounds()
	if bounds.Dx() != 80 || bounds.Dy() != 80 {
		t.Errorf("frame bounds %v, want 80x80", bounds)
	}
}

func TestWritePNG(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	if err := testScene().WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	assert.NoError(err)
	assert.Equal(80, img.Bounds().Dx())
	assert.Equal(80, img.Bounds().Dy())
}

func TestMarkerImageFallback(t *testing.T) {
	s := testScene()
	s.UseMarkerImage(filepath.Join(t.TempDir(), "missing.png"), 0.5)
	if s.marker != nil {
		t.Fatal("marker should stay nil for a missing file")
	}

	// Rendering with the fallback dot must still work.
	img := s.RenderFrame(refract.P(5, 0))
	if img.Bounds().Dx() != 80 {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
}

func TestMarkerImageLoads(t *testing.T) {
	dir := t.TempDir()
	markerPath := filepath.Join(dir, "marker.png")

	m := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Set(i, j, color.RGBA{R: 255, A: 255})
		}
	}
	f, err := os.Create(markerPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, m); err != nil {
		t.Fatal(err)
	}
	f.Close()

	s := testScene()
	s.UseMarkerImage(markerPath, 0.5)
	if s.marker == nil {
		t.Fatal("marker image did not load")
	}
	if s.markerZoom != 0.5 {
		t.Errorf("zoom = %v, want 0.5", s.markerZoom)
	}
	s.RenderFrame(refract.P(5, 0))
}

func TestEmptyMarkerPathKeepsDot(t *testing.T) {
	s := testScene()
	s.UseMarkerImage("", 0.5)
	if s.marker != nil {
		t.Fatal("empty path should not set a marker")
	}
}
