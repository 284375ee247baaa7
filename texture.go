package learngl

import (
	"image"
	"image/color"
)

// Checkerboard returns a size x size RGBA image split into cells x cells
// squares alternating between a and b, starting with a in the top-left.
// Non-positive arguments are treated as 1.
func Checkerboard(size, cells int, a, b color.RGBA) *image.RGBA {
	if size < 1 {
		size = 1
	}
	if cells < 1 {
		cells = 1
	}
	if cells > size {
		cells = size
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		cy := y * cells / size
		for x := 0; x < size; x++ {
			cx := x * cells / size
			if (cx+cy)%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}

// Image generates the checkerboard described by c.
func (c TextureConfig) Image() *image.RGBA {
	return Checkerboard(c.Size, c.Cells, ToRGBA(c.A), ToRGBA(c.B))
}

// ToRGBA converts a [0, 1] float color to 8-bit RGBA, clamping out of
// range components.
func ToRGBA(c [4]float32) color.RGBA {
	return color.RGBA{
		R: unitToByte(c[0]),
		G: unitToByte(c[1]),
		B: unitToByte(c[2]),
		A: unitToByte(c[3]),
	}
}

func unitToByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// FlipVertical swaps rows in place so the first row becomes the last.
// OpenGL reads pixels bottom row first.
func FlipVertical(img *image.RGBA) {
	h := img.Rect.Dy()
	rowLen := img.Rect.Dx() * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		bot := img.PixOffset(img.Rect.Min.X, img.Rect.Max.Y-1-y)
		copy(tmp, img.Pix[top:top+rowLen])
		copy(img.Pix[top:top+rowLen], img.Pix[bot:bot+rowLen])
		copy(img.Pix[bot:bot+rowLen], tmp)
	}
}
