package material

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// ImageTexture provides color from a 2D image using nearest-sample lookup
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], y=0 is the top row
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	if len(pixels) != width*height {
		panic("image texture pixel count does not match dimensions")
	}
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate wraps st into [0,1), flips the vertical axis and returns the
// nearest texel
func (t *ImageTexture) Evaluate(st core.Vec2) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.Vec3{}
	}
	u := fract(st.X)
	v := fract(st.Y)

	x := clampIndex(int(math.Floor(u*float64(t.Width))), t.Width)
	y := clampIndex(int(math.Floor((1.0-v)*float64(t.Height))), t.Height)
	return t.Pixels[y*t.Width+x]
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
