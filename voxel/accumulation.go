package voxel

import (
	"encoding/binary"

	"github.com/igsio/volrecon/geom"
)

// accUnit is the fixed-point weight unit of the accumulation buffer:
// one unit of deposited weight = 1/256, per spec.md §3.
const accUnit = 256.0

// maxAccValue is the saturation ceiling of the 16-bit accumulation
// cell, per spec.md §3: value <= 65535, never silently wraps.
const maxAccValue = 65535

// Accumulation is the 3D parallel buffer of 16-bit unsigned total
// deposited weight, same extent as the Volume it tracks. A value of
// 65535 denotes either an exact match or a saturated (clamped) cell;
// Orchestrator.InsertSlice counts the clamps separately.
type Accumulation struct {
	extent geom.Extent
	data   []byte // little-endian uint16 per voxel, 1 component
}

// NewAccumulation allocates a zeroed Accumulation buffer for extent.
func NewAccumulation(extent geom.Extent) (*Accumulation, error) {
	if extent.IsEmpty() {
		return nil, ErrInvalidExtent
	}
	n := extent.SizeX() * extent.SizeY() * extent.SizeZ()
	return &Accumulation{extent: extent, data: make([]byte, n*2)}, nil
}

// Extent returns the accumulation buffer's voxel extent.
func (a *Accumulation) Extent() geom.Extent { return a.extent }

func (a *Accumulation) index(x, y, z int) int {
	ex := a.extent
	lx := x - ex.X0
	ly := y - ex.Y0
	lz := z - ex.Z0
	return (lz*ex.SizeY()+ly)*ex.SizeX() + lx
}

// At returns the raw accumulation cell value at (x,y,z), an integer in
// [0, 65535] representing deposited weight in units of 1/256.
func (a *Accumulation) At(x, y, z int) uint16 {
	off := a.index(x, y, z) * 2
	return binary.LittleEndian.Uint16(a.data[off:])
}

// Weight returns the deposited weight at (x,y,z) as a float in [0,256].
func (a *Accumulation) Weight(x, y, z int) float64 {
	return float64(a.At(x, y, z)) / accUnit
}

// Add deposits weightUnits (already scaled by accUnit) at (x,y,z),
// clamping at maxAccValue and reporting whether the cell saturated.
func (a *Accumulation) Add(x, y, z int, weightUnits float64) (overflowed bool) {
	off := a.index(x, y, z) * 2
	cur := float64(binary.LittleEndian.Uint16(a.data[off:]))
	sum := cur + weightUnits
	if sum > maxAccValue {
		sum = maxAccValue
		overflowed = true
	}
	binary.LittleEndian.PutUint16(a.data[off:], uint16(sum))
	return overflowed
}

// Set overwrites the accumulation cell at (x,y,z), clamping to
// maxAccValue, used by Latest and Maximum compounding which replace
// rather than accumulate.
func (a *Accumulation) Set(x, y, z int, weightUnits float64) (overflowed bool) {
	if weightUnits > maxAccValue {
		weightUnits = maxAccValue
		overflowed = true
	}
	off := a.index(x, y, z) * 2
	binary.LittleEndian.PutUint16(a.data[off:], uint16(weightUnits))
	return overflowed
}

// Zero clears the accumulation buffer to zero.
func (a *Accumulation) Zero() {
	clear(a.data)
}
