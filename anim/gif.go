package anim

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/fermatics/raybend/refract"
)

// Animation couples a scene with a frame schedule and playback rate.
type Animation struct {
	Scene  *Scene
	Frames []refract.Point
	FPS    int
}

// WriteGIF renders every scheduled frame and encodes a looping
// animated GIF. Frames are quantized to the Plan9 palette with
// Floyd-Steinberg dithering.
func (a *Animation) WriteGIF(w io.Writer) error {
	if len(a.Frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	if a.FPS < 1 {
		return fmt.Errorf("fps must be positive, got %d", a.FPS)
	}

	// GIF delays tick in 100ths of a second.
	delay := int(math.Round(100 / float64(a.FPS)))
	if delay < 1 {
		delay = 1
	}

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(a.Frames)),
		Delay:     make([]int, 0, len(a.Frames)),
		LoopCount: 0,
	}
	for i, pos := range a.Frames {
		frame := a.Scene.RenderFrame(pos)
		pimg := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), frame, image.Point{})
		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)

		if len(a.Frames) >= 100 && i%(len(a.Frames)/10) == 0 {
			log.WithFields(log.Fields{
				"frame": i,
				"total": len(a.Frames),
			}).Debug("Rendering animation")
		}
	}
	return gif.EncodeAll(w, out)
}
