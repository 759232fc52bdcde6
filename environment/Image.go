package environment

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a flattened RGB8 picture of an environment, stored row
// major with three bytes per pixel.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage returns a black Image of the given dimensions
func NewImage(width, height int) Image {
	return Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Len returns the number of bytes in the Image
func (i Image) Len() int {
	return len(i.Pix)
}

// Set sets the colour of pixel (x, y)
func (i Image) Set(x, y int, r, g, b uint8) {
	if x < 0 || x >= i.Width || y < 0 || y >= i.Height {
		panic(fmt.Sprintf("set: pixel out of bounds \n\twant(<(%v, %v))"+
			"\n\thave(%v, %v)", i.Width, i.Height, x, y))
	}
	offset := (y*i.Width + x) * 3
	i.Pix[offset] = r
	i.Pix[offset+1] = g
	i.Pix[offset+2] = b
}

// At returns the colour of pixel (x, y)
func (i Image) At(x, y int) (r, g, b uint8) {
	offset := (y*i.Width + x) * 3
	return i.Pix[offset], i.Pix[offset+1], i.Pix[offset+2]
}

// Clone returns a deep copy of the Image
func (i Image) Clone() Image {
	pix := make([]uint8, len(i.Pix))
	copy(pix, i.Pix)
	return Image{Width: i.Width, Height: i.Height, Pix: pix}
}

// Features returns the Image as a feature vector with each byte scaled
// to [0, 1]
func (i Image) Features() []float64 {
	features := make([]float64, len(i.Pix))
	for j, p := range i.Pix {
		features[j] = float64(p) / 255.0
	}
	return features
}

// RGBA converts the Image to a standard library image
func (i Image) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, i.Width, i.Height))
	for y := 0; y < i.Height; y++ {
		for x := 0; x < i.Width; x++ {
			r, g, b := i.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
