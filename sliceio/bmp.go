// Package sliceio decodes image files into voxel.Slice fixtures, for
// test and tool use where a ground-truth slice is easier to author as
// a small bitmap than as inline bytes.
package sliceio

import (
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"

	"github.com/igsio/volrecon/voxel"
)

// DecodeBMP reads a BMP image and wraps it as a voxel.Slice at the
// given origin and spacing. Images that bmp.Decode returns as
// *image.Gray or *image.Gray16 decode to a 1-component Uint8 slice;
// anything else decodes to a 3-component Uint8 RGB slice, dropping
// alpha. 8-bit BMPs, including the grayscale ones EncodeBMP writes for
// 1-component slices, come back from bmp.Decode as paletted images and
// so decode to 3 components.
func DecodeBMP(r io.Reader, originX, originY, originZ, spacingX, spacingY, spacingZ float64) (*voxel.Slice, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	return sliceFromImage(img, originX, originY, originZ, spacingX, spacingY, spacingZ)
}

// EncodeBMP writes a 1- or 3-component Uint8 slice as a BMP image, for
// generating or inspecting test fixtures.
func EncodeBMP(w io.Writer, s *voxel.Slice) error {
	return bmp.Encode(w, imageFromSlice(s))
}

func sliceFromImage(img image.Image, originX, originY, originZ, spacingX, spacingY, spacingZ float64) (*voxel.Slice, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	switch img.(type) {
	case *image.Gray, *image.Gray16:
		data := make([]byte, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, _, _, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				data[y*width+x] = byte(r >> 8)
			}
		}
		return voxel.NewSlice(width, height, originX, originY, originZ, spacingX, spacingY, spacingZ, 1, voxel.KindUint8, data)
	default:
		data := make([]byte, width*height*3)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				i := (y*width + x) * 3
				data[i+0] = byte(r >> 8)
				data[i+1] = byte(g >> 8)
				data[i+2] = byte(b >> 8)
			}
		}
		return voxel.NewSlice(width, height, originX, originY, originZ, spacingX, spacingY, spacingZ, 3, voxel.KindUint8, data)
	}
}

func imageFromSlice(s *voxel.Slice) image.Image {
	ext := s.Extent()
	width := ext.X1 - ext.X0 + 1
	height := ext.Y1 - ext.Y0 + 1

	if s.Components() == 1 {
		img := image.NewGray(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				img.SetGray(x, y, color.Gray{Y: byte(s.At(ext.X0+x, ext.Y0+y, 0))})
			}
		}
		return img
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: byte(s.At(ext.X0+x, ext.Y0+y, 0)),
				G: byte(s.At(ext.X0+x, ext.Y0+y, 1)),
				B: byte(s.At(ext.X0+x, ext.Y0+y, 2)),
				A: 255,
			})
		}
	}
	return img
}
