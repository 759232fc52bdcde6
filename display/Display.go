// Package display implements sinks that present pictures of an
// environment while an agent trains in it
package display

import (
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/samuelfneumann/goqlearn/environment"
)

// Frame is a snapshot of an environment's picture. A Frame owns its
// Image and is never modified after it is created.
type Frame struct {
	Name  string
	Epoch int
	Image environment.Image
}

// NewFrame returns a Frame holding a copy of img
func NewFrame(name string, epoch int, img environment.Image) Frame {
	return Frame{Name: name, Epoch: epoch, Image: img.Clone()}
}

// Sink presents Frames
type Sink interface {
	Show(f Frame) error
}

// Render draws img with each pixel scaled to a scale x scale square
func Render(img environment.Image, scale int) image.Image {
	return draw(img, scale).Image()
}

// EncodePNG writes img to w as a PNG, with each pixel scaled to a
// scale x scale square
func EncodePNG(w io.Writer, img environment.Image, scale int) error {
	return draw(img, scale).EncodePNG(w)
}

// draw returns a drawing context holding the scaled image
func draw(img environment.Image, scale int) *gg.Context {
	if scale < 1 {
		scale = 1
	}

	dc := gg.NewContext(img.Width*scale, img.Height*scale)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.At(x, y)
			dc.SetRGB255(int(r), int(g), int(b))
			dc.DrawRectangle(float64(x*scale), float64(y*scale),
				float64(scale), float64(scale))
			dc.Fill()
		}
	}
	return dc
}
