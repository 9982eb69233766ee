package bmpsteg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/bmp"
)

// NewCoverBitmap returns an uncompressed bitmap of the given size filled with
// c, suitable as a carrier. Fully opaque colours produce a 24-bit file.
func NewCoverBitmap(width, height int, c color.Color) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bmpsteg: invalid cover size %dx%d", width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return EncodeCoverImage(img)
}

// EncodeCoverImage writes img as an uncompressed bitmap carrier.
func EncodeCoverImage(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
