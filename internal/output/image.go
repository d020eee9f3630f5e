// Package output turns rendered frames into image files.
package output

import (
	"image"

	"golang.org/x/image/draw"

	"raycast-renderer/internal/raster"
)

// ToNRGBA copies an RGB frame into an opaque NRGBA image.
func ToNRGBA(fb *raster.FrameBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i] = c[0]
			img.Pix[i+1] = c[1]
			img.Pix[i+2] = c[2]
			img.Pix[i+3] = 255
		}
	}
	return img
}

// Downsample scales img to w×h with CatmullRom filtering. Frames are opaque,
// so no alpha premultiplication is needed. An image already at or below the
// target size is returned as is.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
