package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// Framebuffer holds linear radiance per pixel in row-major order, top row
// first
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

// At returns the pixel at column x, row y
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores the pixel at column x, row y
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// encodeChannel maps a linear value to a byte as 255·clamp(c^gamma, 0, 1)
func encodeChannel(c, gamma float64) uint8 {
	v := math.Pow(c, gamma)
	if math.IsNaN(v) {
		return 0
	}
	return uint8(255 * math.Max(0, math.Min(1, v)))
}

// WritePPM encodes the framebuffer as a binary P6 image
func (fb *Framebuffer) WritePPM(w io.Writer, gamma float64) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	row := make([]byte, 3*fb.Width)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			row[3*x] = encodeChannel(c.X, gamma)
			row[3*x+1] = encodeChannel(c.Y, gamma)
			row[3*x+2] = encodeChannel(c.Z, gamma)
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("failed to write PPM pixels: %w", err)
		}
	}
	return bw.Flush()
}

// Image converts the framebuffer to an 8-bit RGBA image with the same
// encoding as WritePPM
func (fb *Framebuffer) Image(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: encodeChannel(c.X, gamma),
				G: encodeChannel(c.Y, gamma),
				B: encodeChannel(c.Z, gamma),
				A: 255,
			})
		}
	}
	return img
}
