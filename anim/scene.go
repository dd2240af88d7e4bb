package anim

import (
	"image"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
	log "github.com/sirupsen/logrus"

	"github.com/fermatics/raybend/refract"
)

const (
	dotRadius    = 5.0
	markerRadius = 6.0
	legendMargin = 10.0
	legendRow    = 16.0
	legendPad    = 6.0
	swatchWidth  = 22.0
)

// Scene draws a solved path onto the simulation plane. The viewport
// spans [0, Width] by [0, Height] in world units; geometry outside it
// simply clips.
type Scene struct {
	Path     refract.Path
	Plane    refract.Size
	Title    string
	WidthPx  int
	HeightPx int

	marker     image.Image
	markerZoom float64
}

// NewScene sizes a scene for the given plane, keeping world units
// square in pixel space.
func NewScene(path refract.Path, plane refract.Size, widthPx int, title string) *Scene {
	if widthPx < 1 {
		widthPx = 1
	}
	heightPx := int(math.Round(float64(widthPx) * plane.Height / plane.Width))
	if heightPx < 1 {
		heightPx = 1
	}
	return &Scene{
		Path:     path,
		Plane:    plane,
		Title:    title,
		WidthPx:  widthPx,
		HeightPx: heightPx,
	}
}

// UseMarkerImage loads an image to stand in for the moving light
// marker, scaled by zoom. A missing or unreadable file logs a warning
// and keeps the default dot marker.
func (s *Scene) UseMarkerImage(path string, zoom float64) {
	if path == "" {
		return
	}
	img, err := gg.LoadImage(path)
	if err != nil {
		log.WithFields(log.Fields{
			"image": path,
			"error": err,
		}).Warn("Falling back to default marker")
		return
	}
	s.marker = img
	s.markerZoom = zoom
}

// project maps world coordinates to pixel coordinates. World y grows
// upward and raster y downward, so the vertical axis flips.
func (s *Scene) project(p refract.Point) (x, y float64) {
	x = p.X / s.Plane.Width * float64(s.WidthPx)
	y = float64(s.HeightPx) - p.Y/s.Plane.Height*float64(s.HeightPx)
	return x, y
}

// RenderFrame draws the scene with the moving marker at pos.
func (s *Scene) RenderFrame(pos refract.Point) image.Image {
	dc := gg.NewContext(s.WidthPx, s.HeightPx)
	s.drawBase(dc)
	s.drawMarker(dc, pos)
	return dc.Image()
}

// RenderStill draws the scene without a marker, for static output.
func (s *Scene) RenderStill() image.Image {
	dc := gg.NewContext(s.WidthPx, s.HeightPx)
	s.drawBase(dc)
	return dc.Image()
}

// WritePNG encodes the still scene as PNG.
func (s *Scene) WritePNG(w io.Writer) error {
	return png.Encode(w, s.RenderStill())
}

func (s *Scene) drawBase(dc *gg.Context) {
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Interface line at the crossing height, dashed across the full
	// width.
	_, iy := s.project(s.Path.ArrivalCrossing())
	dc.SetRGB(0.1, 0.3, 0.8)
	dc.SetLineWidth(1.5)
	dc.SetDash(8, 6)
	dc.DrawLine(0, iy, float64(s.WidthPx), iy)
	dc.Stroke()
	dc.SetDash()

	// The bent ray.
	dc.SetRGB(0.85, 0.1, 0.1)
	dc.SetLineWidth(2)
	x0, y0 := s.project(s.Path[0])
	dc.MoveTo(x0, y0)
	for _, p := range s.Path[1:] {
		dc.LineTo(s.project(p))
	}
	dc.Stroke()

	// Endpoints.
	sx, sy := s.project(s.Path.Start())
	dc.SetRGB(0, 0.6, 0.2)
	dc.DrawCircle(sx, sy, dotRadius)
	dc.Fill()

	ex, ey := s.project(s.Path.End())
	dc.SetRGB(0.85, 0.1, 0.1)
	dc.DrawCircle(ex, ey, dotRadius)
	dc.Fill()

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(s.Title, float64(s.WidthPx)/2, 14, 0.5, 0.5)

	s.drawLegend(dc)
}

func (s *Scene) drawMarker(dc *gg.Context, pos refract.Point) {
	x, y := s.project(pos)
	if s.marker == nil {
		dc.SetRGB(0, 0, 0)
		dc.DrawCircle(x, y, markerRadius)
		dc.Fill()
		return
	}
	dc.Push()
	dc.Translate(x, y)
	dc.Scale(s.markerZoom, s.markerZoom)
	dc.DrawImageAnchored(s.marker, 0, 0, 0.5, 0.5)
	dc.Pop()
}

func (s *Scene) drawLegend(dc *gg.Context) {
	entries := []struct {
		label   string
		r, g, b float64
		dashed  bool
	}{
		{"Material Interface", 0.1, 0.3, 0.8, true},
		{"Start Point", 0, 0.6, 0.2, false},
		{"End Point", 0.85, 0.1, 0.1, false},
	}

	maxW := 0.0
	for _, e := range entries {
		if w, _ := dc.MeasureString(e.label); w > maxW {
			maxW = w
		}
	}
	boxW := maxW + swatchWidth + 3*legendPad
	boxH := float64(len(entries))*legendRow + legendPad
	x := float64(s.WidthPx) - boxW - legendMargin
	y := legendMargin + 14

	dc.SetRGBA(1, 1, 1, 0.85)
	dc.DrawRectangle(x, y, boxW, boxH)
	dc.Fill()
	dc.SetRGB(0.3, 0.3, 0.3)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x, y, boxW, boxH)
	dc.Stroke()

	for i, e := range entries {
		rowY := y + legendPad/2 + float64(i)*legendRow + legendRow/2
		dc.SetRGB(e.r, e.g, e.b)
		if e.dashed {
			dc.SetDash(4, 3)
			dc.DrawLine(x+legendPad, rowY, x+legendPad+swatchWidth, rowY)
			dc.Stroke()
			dc.SetDash()
		} else {
			dc.DrawCircle(x+legendPad+swatchWidth/2, rowY, 4)
			dc.Fill()
		}
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(e.label, x+2*legendPad+swatchWidth, rowY, 0, 0.35)
	}
}
