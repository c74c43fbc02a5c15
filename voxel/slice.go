package voxel

import "github.com/igsio/volrecon/geom"

// Slice is an immutable 2D input image: extent z-range is always 0, per
// spec.md §3. A Slice is owned by the caller and borrowed read-only for
// the duration of one InsertSlice call.
type Slice struct {
	buf                          *Buffer
	originX, originY, originZ    float64
	spacingX, spacingY, spacingZ float64
}

// NewSlice builds a Slice from extent {0,W-1,0,H-1,0,0}, an mm origin
// and spacing, a component count and scalar kind, and a contiguous
// row-major (x fastest) pixel buffer.
func NewSlice(width, height int, originX, originY, originZ, spacingX, spacingY, spacingZ float64, components int, kind Kind, data []byte) (*Slice, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidExtent
	}
	extent := geom.Extent{X0: 0, X1: width - 1, Y0: 0, Y1: height - 1, Z0: 0, Z1: 0}
	buf, err := WrapBuffer(extent, components, kind, data)
	if err != nil {
		return nil, err
	}
	return &Slice{
		buf:      buf,
		originX:  originX,
		originY:  originY,
		originZ:  originZ,
		spacingX: spacingX,
		spacingY: spacingY,
		spacingZ: spacingZ,
	}, nil
}

// Extent returns the slice's pixel extent.
func (s *Slice) Extent() geom.Extent { return s.buf.Extent() }

// Components returns 1 (monochrome) or 3 (RGB).
func (s *Slice) Components() int { return s.buf.Components() }

// Kind returns the slice's scalar kind.
func (s *Slice) Kind() Kind { return s.buf.Kind() }

// Origin returns the slice's mm origin in the image frame.
func (s *Slice) Origin() (x, y, z float64) { return s.originX, s.originY, s.originZ }

// Spacing returns the slice's mm spacing.
func (s *Slice) Spacing() (sx, sy, sz float64) { return s.spacingX, s.spacingY, s.spacingZ }

// At returns component c of pixel (x,y) as a float64.
func (s *Slice) At(x, y, c int) float64 { return s.buf.At(x, y, 0, c) }

// ScaleMatrix returns the 4x4 matrix S_in of spec.md §4.4 that scales
// pixel-index coordinates into the image frame's mm coordinates, using
// the slice's spacing and origin.
func (s *Slice) ScaleMatrix() geom.Mat4 {
	return geom.Translate4(s.originX, s.originY, s.originZ).
		Multiply(geom.Scale4(s.spacingX, s.spacingY, s.spacingZ))
}
