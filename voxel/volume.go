package voxel

import "github.com/igsio/volrecon/geom"

// Volume is the 3D output voxel grid: caller-chosen extent, spacing and
// origin in the reference frame. Owned and mutated only by the
// orchestrator; callers may read it by reference between InsertSlice
// calls but must not retain references across Reset.
type Volume struct {
	buf                          *Buffer
	originX, originY, originZ    float64
	spacingX, spacingY, spacingZ float64
}

// NewVolume allocates a zeroed Volume for extent with the given mm
// origin, spacing, component count and scalar kind.
func NewVolume(extent geom.Extent, originX, originY, originZ, spacingX, spacingY, spacingZ float64, components int, kind Kind) (*Volume, error) {
	buf, err := NewBuffer(extent, components, kind)
	if err != nil {
		return nil, err
	}
	return &Volume{
		buf:      buf,
		originX:  originX,
		originY:  originY,
		originZ:  originZ,
		spacingX: spacingX,
		spacingY: spacingY,
		spacingZ: spacingZ,
	}, nil
}

// Extent returns the volume's voxel extent.
func (v *Volume) Extent() geom.Extent { return v.buf.Extent() }

// Components returns 1 or 3.
func (v *Volume) Components() int { return v.buf.Components() }

// Kind returns the volume's scalar kind.
func (v *Volume) Kind() Kind { return v.buf.Kind() }

// Origin returns the volume's mm origin in the reference frame.
func (v *Volume) Origin() (x, y, z float64) { return v.originX, v.originY, v.originZ }

// Spacing returns the volume's mm spacing.
func (v *Volume) Spacing() (sx, sy, sz float64) { return v.spacingX, v.spacingY, v.spacingZ }

// At returns component c of voxel (x,y,z).
func (v *Volume) At(x, y, z, c int) float64 { return v.buf.At(x, y, z, c) }

// Set writes component c of voxel (x,y,z), rounding/clamping per Kind.
func (v *Volume) Set(x, y, z, c int, value float64) { v.buf.Set(x, y, z, c, value) }

// Zero clears the volume to zero.
func (v *Volume) Zero() { v.buf.Zero() }

// Rebind zeros the volume and rebinds its mm origin/spacing in place,
// letting a pooled Volume (same extent, components and kind) be reused
// for a new Reset call without reallocating its backing buffer.
func (v *Volume) Rebind(originX, originY, originZ, spacingX, spacingY, spacingZ float64) {
	v.buf.Zero()
	v.originX, v.originY, v.originZ = originX, originY, originZ
	v.spacingX, v.spacingY, v.spacingZ = spacingX, spacingY, spacingZ
}

// InverseScaleMatrix returns the 4x4 matrix S_out^-1 of spec.md §4.4
// that maps mm coordinates in the reference frame to the volume's
// integer voxel-index coordinates.
func (v *Volume) InverseScaleMatrix() geom.Mat4 {
	scale := geom.Translate4(v.originX, v.originY, v.originZ).
		Multiply(geom.Scale4(v.spacingX, v.spacingY, v.spacingZ))
	inv, ok := scale.Invert()
	if !ok {
		return geom.Identity4()
	}
	return inv
}
