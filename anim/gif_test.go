package anim

import (
	"bytes"
	"image/gif"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fermatics/raybend/refract"
)

func TestWriteGIF(t *testing.T) {
	assert := assert.New(t)

	path := nominalPath()
	frames := Schedule(path, 8, PaceByLength, 1, 1)
	a := &Animation{
		Scene:  NewScene(path, refract.Size{Width: 20, Height: 20}, 40, "gif"),
		Frames: frames,
		FPS:    30,
	}

	var buf bytes.Buffer
	if err := a.WriteGIF(&buf); err != nil {
		t.Fatalf("WriteGIF: %v", err)
	}

	decoded, err := gif.DecodeAll(&buf)
	assert.NoError(err)
	assert.Equal(len(frames), len(decoded.Image))
	assert.Equal(0, decoded.LoopCount)
	for _, d := range decoded.Delay {
		// 30 fps rounds to 3 hundredths of a second per frame.
		assert.Equal(3, d)
	}
}

func TestWriteGIFErrors(t *testing.T) {
	scene := NewScene(nominalPath(), refract.Size{Width: 20, Height: 20}, 40, "gif")

	tests := []struct {
		name string
		anim Animation
	}{
		{"no_frames", Animation{Scene: scene, Frames: nil, FPS: 30}},
		{"zero_fps", Animation{Scene: scene, Frames: []refract.Point{refract.P(1, 1)}, FPS: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.anim.WriteGIF(&buf); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestWriteGIFSlowFPS(t *testing.T) {
	a := &Animation{
		Scene:  NewScene(nominalPath(), refract.Size{Width: 20, Height: 20}, 20, "gif"),
		Frames: []refract.Point{refract.P(0, 10), refract.P(5, 0)},
		FPS:    2,
	}
	var buf bytes.Buffer
	if err := a.WriteGIF(&buf); err != nil {
		t.Fatalf("WriteGIF: %v", err)
	}
	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	// 2 fps is half a second per frame.
	assert.Equal(t, 50, decoded.Delay[0])
}
